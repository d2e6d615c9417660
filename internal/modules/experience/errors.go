package experience

import "errors"

var ErrInvalidStatus = errors.New("invalid experience status filter")
