package mcp

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestRunnerRequiresApp(t *testing.T) {
	if err := (Runner{}).Do(context.Background()); err == nil {
		t.Fatalf("expected an error without a diary session")
	}
}

func TestRunnerHTTPShutsDownWithContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())

	listening := make(chan net.Addr, 1)
	r := Runner{
		App:              svc.App,
		Location:         time.UTC,
		Transport:        TransportHTTP,
		HTTPListenAddr:   "127.0.0.1:0",
		HTTPEndpointPath: "/mcp",
		OnHTTPListening:  func(a net.Addr) { listening <- a },
	}

	done := make(chan error, 1)
	go func() { done <- r.Do(ctx) }()

	var addr net.Addr
	select {
	case addr = <-listening:
	case err := <-done:
		t.Fatalf("runner stopped early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("server never started listening")
	}

	resp, err := http.Get("http://" + addr.String() + "/unknown")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 outside the endpoint, got %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("server did not stop")
	}
}

func TestRunnerRejectsHalfTLS(t *testing.T) {
	svc := newTestService(t)
	r := Runner{App: svc.App, HTTPListenAddr: "127.0.0.1:0", HTTPServerCert: "cert.pem"}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for a certificate without a key")
	}
}
