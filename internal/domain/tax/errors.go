package tax

import "errors"

var (
	ErrBracketsNotFound  = errors.New("no tax brackets found for year")
	ErrInvalidBracketSet = errors.New("tax brackets must be contiguous, non-overlapping and end unbounded")
)
