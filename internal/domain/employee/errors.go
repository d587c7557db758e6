package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeInactive    = errors.New("employee is not active")
	ErrEmployeeCodeExists  = errors.New("employee code already exists")
	ErrEmployeeEmailExists = errors.New("employee email already registered")
)
