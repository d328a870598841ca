package source

import (
	"fmt"

	"github.com/Veraticus/dex/internal/common"
)

// ErrUnknownKind is returned for an unrecognized source.kind.
var ErrUnknownKind = fmt.Errorf("%w: unknown source kind", common.ErrInvalidConfig)
