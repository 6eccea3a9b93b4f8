package employee

import (
	"context"
	"time"

	"github.com/goto/roster/core/paginate"
	"github.com/goto/roster/core/validator"
)

// Employee is one directory entry.
type Employee struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	Email     string    `json:"email" db:"email" validate:"required,email"`
	Role      string    `json:"role" db:"role"`
	Age       int       `json:"age" db:"age" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Validate checks whether the employee fulfills the field constraints.
func (e Employee) Validate() error {
	return validator.ValidateStruct(e)
}

// Repository manages employee storage. Fetch executes compiled list plans.
type Repository interface {
	paginate.Executor
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, e Employee) (string, error)
	Delete(ctx context.Context, id string) error
}
