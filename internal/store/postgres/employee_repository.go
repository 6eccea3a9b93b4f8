package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/goto/roster/core/employee"
	"github.com/goto/roster/core/paginate"
)

// EmployeeRepository manages employee rows in the primary database.
type EmployeeRepository struct {
	client *Client
}

// NewEmployeeRepository initializes employee repository
func NewEmployeeRepository(client *Client) (*EmployeeRepository, error) {
	if client == nil {
		return nil, errNilPostgresClient
	}
	return &EmployeeRepository{client: client}, nil
}

// Fetch executes a compiled list plan: it selects the page of rows into dest
// and counts all rows matching the plan's predicate groups.
func (r *EmployeeRepository) Fetch(ctx context.Context, plan paginate.Plan, dest interface{}) (int, error) {
	builder := r.getEmployeeSQL()
	countBuilder := sq.Select("count(1)").From("employees")
	for _, group := range plan.Where {
		builder = builder.Where(group)
		countBuilder = countBuilder.Where(group)
	}
	for _, o := range plan.OrderBy {
		builder = builder.OrderBy(o.Column + " " + o.Direction)
	}
	builder = builder.Limit(plan.Limit).Offset(plan.Offset)

	query, args, err := buildSQL(builder)
	if err != nil {
		return 0, fmt.Errorf("error building list query: %w", err)
	}
	if err := r.client.SelectContext(ctx, dest, query, args...); err != nil {
		return 0, fmt.Errorf("error getting employee list: %w", err)
	}

	query, args, err = buildSQL(countBuilder)
	if err != nil {
		return 0, fmt.Errorf("error building count query: %w", err)
	}
	var total int
	if err := r.client.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("error counting employees: %w", err)
	}

	return total, nil
}

// GetByID retrieves employee by its ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !isValidUUID(id) {
		return employee.Employee{}, employee.InvalidError{EmployeeID: id}
	}

	builder := r.getEmployeeSQL().Where(sq.Eq{"id": id})
	query, args, err := buildSQL(builder)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("error building query: %w", err)
	}

	var emp employee.Employee
	err = r.client.GetContext(ctx, &emp, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return employee.Employee{}, employee.NotFoundError{EmployeeID: id}
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("error getting employee with ID = %q: %w", id, err)
	}

	return emp, nil
}

// Create inserts a new employee row and returns its generated ID.
func (r *EmployeeRepository) Create(ctx context.Context, e employee.Employee) (string, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	builder := sq.Insert("employees").
		Columns("id", "name", "email", "role", "age", "created_at", "updated_at").
		Values(id, e.Name, e.Email, e.Role, e.Age, now, now)
	query, args, err := buildSQL(builder)
	if err != nil {
		return "", fmt.Errorf("error building insert query: %w", err)
	}

	if _, err := r.client.ExecContext(ctx, query, args...); err != nil {
		if errors.Is(checkPostgresError(err), errDuplicateKey) {
			return "", employee.DuplicateError{Email: e.Email}
		}
		return "", fmt.Errorf("error creating employee: %w", err)
	}

	return id, nil
}

// Delete removes an employee row by its ID.
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	if !isValidUUID(id) {
		return employee.InvalidError{EmployeeID: id}
	}

	builder := sq.Delete("employees").Where(sq.Eq{"id": id})
	query, args, err := buildSQL(builder)
	if err != nil {
		return fmt.Errorf("error building delete query: %w", err)
	}

	affected, err := r.client.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting employee with ID = %q: %w", id, err)
	}
	if affected == 0 {
		return employee.NotFoundError{EmployeeID: id}
	}

	return nil
}

func (r *EmployeeRepository) getEmployeeSQL() sq.SelectBuilder {
	return sq.Select(`
		id,
		name,
		email,
		role,
		age,
		created_at,
		updated_at
		`).
		From("employees")
}
