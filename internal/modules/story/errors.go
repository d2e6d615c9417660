package story

import "errors"

var ErrInvalidFilter = errors.New("invalid comment filter")
