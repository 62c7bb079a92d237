package overlay

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidInput marks detections that break the input contract.
var ErrInvalidInput = errors.New("invalid detection input")

// InvalidInputError reports the detection that broke the input contract.
// It unwraps to ErrInvalidInput.
type InvalidInputError struct {
	Index  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("detection %d: %s", e.Index, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
