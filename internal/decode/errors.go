package decode

import (
	"fmt"

	"github.com/Veraticus/dex/internal/common"
)

// DecodeError reports a record that could not be decoded. Index is the
// position of the record in its batch, or -1 when the document itself is
// malformed.
type DecodeError struct {
	Err   error
	Field string
	Index int
}

func (e *DecodeError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("decode document: %v", e.Err)
	case e.Field != "":
		return fmt.Sprintf("decode record %d: field %q: %v", e.Index, e.Field, e.Err)
	default:
		return fmt.Sprintf("decode record %d: %v", e.Index, e.Err)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is makes every DecodeError match common.ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == common.ErrDecode
}
