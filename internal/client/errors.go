package client

import "fmt"

// ServiceError is a non-2xx response carrying the server's message.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error (%d): %s", e.Status, e.Message)
}

// NetworkError means the request could not be dispatched or the response
// could not be parsed.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
