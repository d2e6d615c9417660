package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")
