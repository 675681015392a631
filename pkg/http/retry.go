package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goto/discuss/pkg/retry"
)

var backoffConfig = retry.Config{
	BaseDelay: time.Second,
	MaxDelay:  30 * time.Second,
}

type RetryableTransport struct {
	Transport  http.RoundTripper
	RetryCount int
}

func (t *RetryableTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading body: %w", err)
		}
		req.Body.Close()
	}

	var resp *http.Response
	var err error
	for attempt := 0; attempt <= t.RetryCount; attempt++ {
		if attempt > 0 {
			// consume any response to reuse the connection.
			drainBody(resp)
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(backoff(attempt - 1)):
			}
		}

		if req.Body != nil {
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
		resp, err = t.Transport.RoundTrip(req)
		if !shouldRetry(err, resp) {
			break
		}
	}

	return resp, err
}

func backoff(retries int) time.Duration {
	return retry.Backoff(backoffConfig, retries)
}

func shouldRetry(err error, resp *http.Response) bool {
	if err != nil {
		return true
	}

	return resp.StatusCode == http.StatusBadGateway ||
		resp.StatusCode == http.StatusServiceUnavailable ||
		resp.StatusCode == http.StatusGatewayTimeout
}

func drainBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
