package httputil

import (
	"bytes"
	"io"
	"net/http"
)

// CloneRequest returns a deep copy of req that can be sent again.
// A body without GetBody is buffered and set on both requests.
func CloneRequest(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())

	switch {
	case req.Body == nil || req.Body == http.NoBody:
		return clone, nil
	case req.GetBody != nil:
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}

		clone.Body = body
		return clone, nil
	}

	buf, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	_ = req.Body.Close()

	req.Body = io.NopCloser(bytes.NewReader(buf))
	clone.Body = io.NopCloser(bytes.NewReader(buf))

	return clone, nil
}
