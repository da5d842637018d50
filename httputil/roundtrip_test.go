package httputil

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoggingRoundTrip(t *testing.T) {
	t.Parallel()

	var gotAgent string
	inner := RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		gotAgent = req.Header.Get("User-Agent")
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("ok")),
		}, nil
	})

	buf := &bytes.Buffer{}
	rt := NewLoggingRoundTrip(inner, zerolog.New(buf), "1.2.3")

	req, err := http.NewRequest(http.MethodGet, "http://controller:9000/tables", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pinotui/1.2.3", gotAgent)
	require.Empty(t, req.Header.Get("User-Agent"), "original request must not be mutated")
	require.Contains(t, buf.String(), `"url":"http://controller:9000/tables"`)
	require.Contains(t, buf.String(), `"status":200`)
}
