package mlp

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and are usually returned wrapped with
// context by github.com/pkg/errors; errors.Cause recovers them.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrNonPositiveSize  = Error{"Layer must have a positive number of neurons"}
	ErrNotDerivable     = Error{"Activation function does not support derivatives"}
	ErrAlreadyDecorated = Error{"Network is already decorated for training"}
	ErrOverlayDetached  = Error{"Overlay has already been removed from its Network"}
	ErrFormat           = Error{"Input does not follow the expected format"}
	ErrEmptySet         = Error{"Training set has no patterns"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError is returned when the length of a provided vector does not match what the
// Network (or TrainingSet) expects.
type SizeMismatchError struct {
	Expected, Got int

	// What was being measured, e.g. "inputs" or "weights"
	Name string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch for %s: expected %d, got %d", err.Name, err.Expected, err.Got)
}

// LayerIndexError is returned when a layer is requested by an index outside [-1, LayerCount-1].
type LayerIndexError struct {
	Index, LayerCount int
}

func (err LayerIndexError) Error() string {
	return fmt.Sprintf("Layer index %d out of range [-1, %d]", err.Index, err.LayerCount-1)
}
