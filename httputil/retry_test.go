package httputil

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func response(status int, retryAfter string) *http.Response {
	header := http.Header{}
	if retryAfter != "" {
		header.Set("Retry-After", retryAfter)
	}

	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(http.StatusText(status))),
	}
}

// sequence replays the given responses, repeating the last one.
func sequence(calls *int, responses ...*http.Response) func() (*http.Response, error) {
	return func() (*http.Response, error) {
		i := min(*calls, len(responses)-1)
		*calls++
		return responses[i], nil
	}
}

func TestRetryOnThrottle(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		responses  []*http.Response
		wantStatus int
		wantCalls  int
	}{
		"success is returned directly": {
			responses:  []*http.Response{response(http.StatusOK, "")},
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		"server errors are not retried": {
			responses:  []*http.Response{response(http.StatusInternalServerError, "0")},
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
		"throttled without retry-after": {
			responses:  []*http.Response{response(http.StatusTooManyRequests, "")},
			wantStatus: http.StatusTooManyRequests,
			wantCalls:  1,
		},
		"throttled with unparsable retry-after": {
			responses:  []*http.Response{response(http.StatusServiceUnavailable, "soon")},
			wantStatus: http.StatusServiceUnavailable,
			wantCalls:  1,
		},
		"retried after throttling": {
			responses: []*http.Response{
				response(http.StatusTooManyRequests, "0"),
				response(http.StatusServiceUnavailable, "0"),
				response(http.StatusOK, ""),
			},
			wantStatus: http.StatusOK,
			wantCalls:  3,
		},
		"gives up after max retries": {
			responses:  []*http.Response{response(http.StatusTooManyRequests, "0")},
			wantStatus: http.StatusTooManyRequests,
			wantCalls:  maxRetries + 1,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var calls int
			resp, err := RetryOnThrottle(context.Background(), sequence(&calls, tc.responses...))
			require.NoError(t, err)
			require.Equal(t, tc.wantStatus, resp.StatusCode)
			require.Equal(t, tc.wantCalls, calls)
		})
	}
}

func TestRetryOnThrottle_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var calls int
	resp, err := RetryOnThrottle(ctx, sequence(&calls, response(http.StatusTooManyRequests, "10")))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Nil(t, resp)
	require.Equal(t, 1, calls)
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	cases := map[string]struct {
		value  string
		want   time.Duration
		wantOk bool
	}{
		"empty":            {value: "", wantOk: false},
		"seconds":          {value: "3", want: 3 * time.Second, wantOk: true},
		"zero seconds":     {value: "0", want: 0, wantOk: true},
		"negative seconds": {value: "-1", wantOk: false},
		"capped":           {value: "3600", want: MaxRetryWait, wantOk: true},
		"http date":        {value: now.Add(5 * time.Second).Format(http.TimeFormat), want: 5 * time.Second, wantOk: true},
		"date in the past": {value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0, wantOk: true},
		"garbage":          {value: "later", wantOk: false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := retryAfter(tc.value, now)
			require.Equal(t, tc.wantOk, ok)
			require.Equal(t, tc.want, got)
		})
	}
}
