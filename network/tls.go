// Package network provides pre-configured HTTP clients for member-site communication.
//
// The fingerprinted client leverages refraction-networking/utls to emulate
// Chrome's TLS Client Hello signature. This is required to pass anti-bot
// challenges (e.g., Cloudflare, DDoS-Guard) that reject standard Go HTTP
// clients on some WordPress hosts and CDNs.
//
// Protocol negotiation: an HTTP/2 connection is attempted first (preferred by
// modern CDNs); on handshake failure the request transparently falls back to
// an HTTP/1.1 transport with forced protocol advertisement.
package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const tlsTimeout = 30 * time.Second

// FingerprintedClient returns an HTTP client whose TLS handshakes mimic Chrome 120.
func FingerprintedClient() *http.Client {
	return &http.Client{
		Timeout:   tlsTimeout,
		Transport: &fallbackTransport{},
	}
}

// fallbackTransport routes requests through the H2 transport and retries once
// over HTTP/1.1 when the H2 handshake is rejected.
type fallbackTransport struct{}

func (fallbackTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := getH2Transport().RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, fmt.Errorf("reset request body: %w", bodyErr)
		}
		retry.Body = body
	}

	return h1Transport.RoundTrip(retry)
}

// h2Transport is a shared HTTP/2 transport for servers that negotiate h2.
var (
	h2Transport     *http2.Transport
	h2TransportOnce sync.Once
)

func getH2Transport() *http2.Transport {
	h2TransportOnce.Do(func() {
		h2Transport = &http2.Transport{
			// Use custom DialTLSContext to provide utls connections
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr)
			},
		}
	})
	return h2Transport
}

// h1Transport is a shared HTTP/1.1 transport for servers that negotiate http/1.1.
var h1Transport = &http.Transport{
	DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialTLSH1(ctx, network, addr)
	},
}

// dialTLS creates a TLS connection mimicking Chrome 120's fingerprint.
// Advertises both h2 and http/1.1 (natural Chrome behavior).
func dialTLS(ctx context.Context, network, addr string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: tlsTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}

// dialTLSH1 creates a TLS connection forcing HTTP/1.1 only (for fallback).
func dialTLSH1(ctx context.Context, network, addr string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: tlsTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: []string{"http/1.1"},
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
