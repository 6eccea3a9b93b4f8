package employee

import "fmt"

type NotFoundError struct {
	EmployeeID string
}

func (err NotFoundError) Error() string {
	if err.EmployeeID != "" {
		return fmt.Sprintf("could not find employee with id = %q", err.EmployeeID)
	}
	return "could not find employee"
}

type InvalidError struct {
	EmployeeID string
}

func (err InvalidError) Error() string {
	return fmt.Sprintf("invalid employee id = %q", err.EmployeeID)
}

type DuplicateError struct {
	Email string
}

func (err DuplicateError) Error() string {
	return fmt.Sprintf("employee with email %q already exists", err.Email)
}
