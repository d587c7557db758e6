package overtime

import "errors"

var (
	ErrRecordNotFound   = errors.New("overtime record not found")
	ErrAlreadyProcessed = errors.New("overtime record has already been approved or rejected")
)
