package models

import (
	"errors"
	"fmt"
)

// Error constants for receiver operations
var (
	ErrReceiverNotFound  = errors.New("receiver not found")
	ErrInvalidReceiverID = errors.New("Id must be a positive number")
)

// PageOutOfRangeError is returned when a search asks for a page past the last one
type PageOutOfRangeError struct {
	Min int
	Max int
}

func (e *PageOutOfRangeError) Error() string {
	return fmt.Sprintf("Page must be between %d and %d", e.Min, e.Max)
}
