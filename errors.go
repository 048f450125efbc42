package tiltify

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse indicates the API returned an envelope carrying
// neither campaign data nor any errors.
var ErrEmptyResponse = errors.New("empty response: no campaign data and no errors reported")

// TransportError indicates the HTTP round trip itself failed: the
// connection could not be made, the body could not be read, or the
// server answered with a non-2xx status.
type TransportError struct {
	// StatusCode is the HTTP status, or 0 if no response was received.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport failed: HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError indicates the response body was not valid JSON
// or did not structurally match the expected envelope.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// MalformedAmountError indicates a currency value on the wire could not
// be parsed as a finite decimal number.
type MalformedAmountError struct {
	// Value is the offending wire content.
	Value string
	Err   error
}

func (e *MalformedAmountError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed currency amount %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("malformed currency amount %q", e.Value)
}

func (e *MalformedAmountError) Unwrap() error {
	return e.Err
}

// RemoteError indicates the API answered the query with one or more
// errors instead of campaign data. Entries are kept in received order.
type RemoteError struct {
	Errors []APIError
}

func (e *RemoteError) Error() string {
	lines := make([]string, 0, len(e.Errors)+1)
	lines = append(lines, "Campaign Query failed:")
	for _, apiErr := range e.Errors {
		lines = append(lines, apiErr.String())
	}
	return strings.Join(lines, "\n")
}
