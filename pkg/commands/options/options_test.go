package options

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/diary"
)

var testNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func TestGetOn(t *testing.T) {
	tests := map[string]string{
		"":          "2025-03-14",
		"today":     "2025-03-14",
		"yesterday": "2025-03-13",
		"2025-3-1":  "2025-03-01",
		"2/28":      "2025-02-28",
		"12/25":     "2024-12-25",
	}
	for in, want := range tests {
		o := &OnOptions{OnString: in}
		got, err := o.GetOn(testNow)
		if err != nil {
			t.Fatalf("GetOn(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("GetOn(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestGetOnRejects(t *testing.T) {
	for _, in := range []string{"2025-3-15", "someday", "2030-1-1"} {
		o := &OnOptions{OnString: in}
		if _, err := o.GetOn(testNow); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestEntryOptions(t *testing.T) {
	o := &EntryOptions{Mood: "thinking", Tags: "#a, b"}
	got, err := o.Entry()
	if err != nil {
		t.Fatalf("Entry: %v", err)
	}
	if got.Mood != diary.MoodThinking || len(got.Tags) != 2 {
		t.Fatalf("unexpected options %#v", got)
	}

	o.Mood = "meh"
	if _, err := o.Entry(); err == nil {
		t.Fatalf("expected unknown mood error")
	}
}

func TestEntryPatchOnlyChangedFlags(t *testing.T) {
	o := &EntryOptions{}
	cmd := &cobra.Command{Use: "edit"}
	AddEntryArgs(cmd, o)
	if err := cmd.Flags().Parse([]string{"--tags="}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	patch, err := o.Patch(cmd)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if patch.Mood != nil {
		t.Fatalf("expected mood untouched")
	}
	if patch.Tags == nil || len(*patch.Tags) != 0 {
		t.Fatalf("expected tags cleared, got %#v", patch.Tags)
	}
}

func TestHandleError(t *testing.T) {
	var buf strings.Builder
	o := &OutputOptions{JSON: true}
	if err := o.handleError(&buf, errors.New("boom")); err != nil {
		t.Fatalf("expected error to be swallowed, got %v", err)
	}
	if got := buf.String(); got != "{\"error\":\"boom\"}\n" {
		t.Fatalf("unexpected output %q", got)
	}

	buf.Reset()
	if err := o.handleError(&buf, fmt.Errorf("%w: entry abc", app.ErrNotFound)); err != nil {
		t.Fatalf("expected error to be swallowed, got %v", err)
	}
	if got := buf.String(); got != "{\"error\":\"app: not found: entry abc\",\"code\":\"not_found\"}\n" {
		t.Fatalf("unexpected output %q", got)
	}

	o.JSON = false
	if err := o.handleError(&buf, errors.New("boom")); err == nil {
		t.Fatalf("expected error to pass through")
	}
}

func TestMCPOptions(t *testing.T) {
	o := &MCPOptions{Host: "", Port: 8765, Path: "tools"}
	if got := o.Endpoint(); got != "/tools" {
		t.Fatalf("Endpoint = %s", got)
	}
	addr, err := o.Addr()
	if err != nil || addr != "127.0.0.1:8765" {
		t.Fatalf("Addr = %s, %v", addr, err)
	}

	o.Port = 70000
	if _, err := o.Addr(); err == nil {
		t.Fatalf("expected port error")
	}

	o.TLSCert = "cert.pem"
	if _, err := o.TLS(); err == nil {
		t.Fatalf("expected error for a cert without a key")
	}
	o.TLSKey = "key.pem"
	if tls, err := o.TLS(); err != nil || !tls {
		t.Fatalf("TLS = %v, %v", tls, err)
	}
}

func TestMCPOptionsURL(t *testing.T) {
	o := &MCPOptions{Host: "0.0.0.0", Path: "/mcp"}
	a := &net.TCPAddr{IP: net.IPv4zero, Port: 41234}
	if got := o.URL(a, false); got != "http://127.0.0.1:41234/mcp" {
		t.Fatalf("URL = %s", got)
	}
	o.Host = "::1"
	if got := o.URL(&net.TCPAddr{IP: net.IPv6loopback, Port: 9}, true); got != "https://[::1]:9/mcp" {
		t.Fatalf("URL = %s", got)
	}
}
