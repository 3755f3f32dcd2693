package pairs

import (
	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/types"
)

// ErrInvalidArgument is returned by [From] for sources of unsupported types.
const ErrInvalidArgument = errorutil.ErrInvalidArgument

// RenderOptions contains options for rendering pairs.
type RenderOptions = types.RenderOptions
