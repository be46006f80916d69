package payments

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Transport performs the single HTTPS exchange of a gateway operation.
// Retries, timeouts and connection management live here, never in the
// protocol core.
type Transport interface {
	Send(ctx context.Context, url string, body string, headers map[string]string) (string, error)
}

// TransportError wraps any failure at the wire boundary. The gateway core
// passes it through unmodified.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPTransport is the default Transport, a plain HTTPS POST.
type HTTPTransport struct {
	client *http.Client
}

func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPTransport{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (t *HTTPTransport) Send(ctx context.Context, url string, body string, headers map[string]string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("body: %s", strings.TrimSpace(string(reply)))}
	}
	return string(reply), nil
}
