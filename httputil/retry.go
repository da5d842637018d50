package httputil

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const (
	// MaxRetryWait caps how long a single Retry-After is honoured.
	MaxRetryWait = time.Second * 30
	maxRetries   = 2
)

// RetryOnThrottle executes retryFunc and repeats it while the server answers
// with 429 or 503, waiting as long as the Retry-After header asks for.
// Responses without a usable Retry-After are returned as is.
func RetryOnThrottle(ctx context.Context, retryFunc func() (*http.Response, error)) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		resp, err := retryFunc()
		if err != nil {
			return nil, err
		}

		if !isThrottled(resp.StatusCode) || attempt == maxRetries {
			return resp, nil
		}

		wait, ok := retryAfter(resp.Header.Get("Retry-After"), time.Now())
		if !ok {
			return resp, nil
		}

		_ = resp.Body.Close()

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}
}

func isThrottled(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

// retryAfter parses a Retry-After value given either in seconds or as HTTP date.
func retryAfter(value string, now time.Time) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}

	var wait time.Duration

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0, false
		}
		wait = time.Duration(seconds) * time.Second
	} else {
		at, err := http.ParseTime(value)
		if err != nil {
			return 0, false
		}
		wait = at.Sub(now)
	}

	return min(max(wait, 0), MaxRetryWait), true
}
