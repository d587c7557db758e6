package benefit

import "errors"

var (
	ErrItemNotFound = errors.New("benefit or deduction item not found")
)
