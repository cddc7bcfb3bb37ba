package contentful

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultRetryMax = 2
	defaultBackoff  = 250 * time.Millisecond
	maxBackoff      = 5 * time.Second
	userAgent       = "drdigital-contentful/1.0"
)

// Transport adds bounded retries for replayable requests. Network errors,
// 429 and 5xx responses are retried; everything else is returned as is.
type Transport struct {
	Base http.RoundTripper

	// RetryMax is the number of retries after the first attempt.
	RetryMax int
	// Backoff is the base delay, multiplied by the attempt number.
	Backoff time.Duration
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	canRetry := (req.Method == http.MethodGet || req.Method == http.MethodHead) && req.Body == nil
	max := t.RetryMax
	if max < 0 || !canRetry {
		max = 0
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		r := req.Clone(req.Context())
		if r.Header.Get("User-Agent") == "" {
			r.Header.Set("User-Agent", userAgent)
		}

		resp, err := base.RoundTrip(r)
		if err == nil && !retryableStatus(resp.StatusCode) {
			return resp, nil
		}
		if attempt >= max {
			return resp, err
		}
		wait := t.delay(attempt, resp)
		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		lastErr = err

		timer := time.NewTimer(wait)
		select {
		case <-req.Context().Done():
			timer.Stop()
			if lastErr == nil {
				lastErr = req.Context().Err()
			}
			return nil, lastErr
		case <-timer.C:
		}
	}
}

func (t *Transport) delay(attempt int, resp *http.Response) time.Duration {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		if secs, err := strconv.Atoi(resp.Header.Get("X-Contentful-RateLimit-Reset")); err == nil && secs > 0 {
			d := time.Duration(secs) * time.Second
			if d > maxBackoff {
				d = maxBackoff
			}
			return d
		}
	}
	b := t.Backoff
	if b <= 0 {
		b = defaultBackoff
	}
	d := b * time.Duration(attempt+1)
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// NewHTTPClient builds the HTTP client used for API calls.
func NewHTTPClient(retryMax int, timeout time.Duration) *http.Client {
	base := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConnsPerHost:   8,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	}
	return &http.Client{
		Transport: &Transport{Base: base, RetryMax: retryMax},
		Timeout:   timeout,
	}
}
