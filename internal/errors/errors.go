// Package errors defines the domain error values returned by the gateway
// core. Every public operation fails with exactly one of these kinds;
// callers match them with errors.Is.
package errors

// DomainError is a stable, code-addressable failure kind.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
