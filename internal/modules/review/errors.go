package review

import "errors"

var (
	ErrEmptyResponse   = errors.New("empty host response")
	ErrResponseTooLong = errors.New("host response too long")
	ErrInvalidRating   = errors.New("invalid rating filter")
)
