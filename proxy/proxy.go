// Package proxy relays public write requests to key-protected internal
// endpoints, injecting the pre-shared key server-side so it is never
// exposed to clients.
package proxy

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotConfigured is returned when the target URL or key is absent.
// The forwarder fails closed: no relay is ever attempted unconfigured.
var ErrNotConfigured = errors.New("proxy: target URL or key not configured")

// RelayError reports a failed downstream call. Detail is a short diagnostic
// with the key already redacted.
type RelayError struct {
	Detail string
}

func (e *RelayError) Error() string { return "proxy: relay failed: " + e.Detail }

// Doer is the subset of *http.Client the forwarder uses.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Forwarder relays a client JSON body to one internal endpoint.
type Forwarder struct {
	// TargetURL is the internal endpoint, e.g.
	// https://registermeal.example.net/api/RegisterMeal
	TargetURL string

	// Key is the endpoint's function key, appended as the code query
	// parameter on every relay.
	Key string

	// Client performs the outbound call. Nil means http.DefaultClient.
	Client Doer
}

// Configured reports whether both target URL and key are set.
func (f *Forwarder) Configured() bool {
	return f.TargetURL != "" && f.Key != ""
}

// Forward POSTs body to the target with the key attached and returns the
// downstream status code and body verbatim. ErrNotConfigured when the
// target is not set; *RelayError on any downstream failure.
func (f *Forwarder) Forward(ctx context.Context, body []byte) (int, []byte, error) {
	if !f.Configured() {
		return 0, nil, ErrNotConfigured
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	target := f.TargetURL + "?code=" + url.QueryEscape(f.Key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return 0, nil, &RelayError{Detail: f.redact(err.Error())}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, &RelayError{Detail: f.redact(err.Error())}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &RelayError{Detail: f.redact(err.Error())}
	}

	return resp.StatusCode, respBody, nil
}

// redact strips the key (raw and query-escaped) from a diagnostic.
// Transport errors quote the full request URL, which includes the key.
func (f *Forwarder) redact(s string) string {
	s = strings.ReplaceAll(s, url.QueryEscape(f.Key), "***")
	return strings.ReplaceAll(s, f.Key, "***")
}
