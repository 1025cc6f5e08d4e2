package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// MCPOptions configure how the MCP server is exposed.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "http", "Transport to use: http or stdio.")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1", "Interface to listen on for the http transport.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8765, "Port for the http transport, 0 picks a free one.")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp", "HTTP endpoint path.")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "", "TLS certificate file, serves https together with --http-tls-key.")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "", "TLS private key file.")
}

// Endpoint is the http path, always with a leading slash.
func (o *MCPOptions) Endpoint() string {
	p := strings.TrimSpace(o.Path)
	if p == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// Addr is the host:port to listen on.
func (o *MCPOptions) Addr() (string, error) {
	if o.Port < 0 || o.Port > 65535 {
		return "", fmt.Errorf("invalid http-port %d", o.Port)
	}
	host := strings.TrimSpace(o.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(o.Port)), nil
}

// TLS reports whether both halves of the key pair were given. Giving only
// one is an error.
func (o *MCPOptions) TLS() (bool, error) {
	cert, key := strings.TrimSpace(o.TLSCert), strings.TrimSpace(o.TLSKey)
	if (cert == "") != (key == "") {
		return false, fmt.Errorf("--http-tls-cert and --http-tls-key go together")
	}
	return cert != "", nil
}

// URL is the address clients should use once the listener is bound to a.
func (o *MCPOptions) URL(a net.Addr, tls bool) string {
	scheme := "http"
	if tls {
		scheme = "https"
	}
	tcp, ok := a.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + a.String() + o.Endpoint()
	}
	host := strings.TrimSpace(o.Host)
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(tcp.Port)) + o.Endpoint()
}
