package llm

import "fmt"

// UpstreamError reports a failed call to the completion endpoint: either a
// non-success HTTP status (StatusCode and Body are set) or a transport
// failure (Err is set). The caller is expected to fall back to static
// data; this error never reaches the end user directly.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion endpoint request failed: %v", e.Err)
	}
	return fmt.Sprintf("completion endpoint error %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
