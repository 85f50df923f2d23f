package service

import "fmt"

// ValidationError rejects a request that is well-formed JSON but cannot be
// priced as given.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
