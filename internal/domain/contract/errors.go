package contract

import (
	"errors"
	"fmt"
)

// Source adapter failure taxonomy. Each kind is distinct so the ingestion
// pipeline can log and skip a workspace without guessing what went wrong.

// TransportError wraps a network-level failure reaching the workspace API.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a structured rejection from the workspace API (ok=false in the
// response envelope), e.g. invalid_auth or channel_not_found.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("workspace api error: %s", e.Message)
}

// DecodeError means the response envelope could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsAPIError reports whether err is a structured API rejection.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsTransportError reports whether err is a network-level failure.
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}
