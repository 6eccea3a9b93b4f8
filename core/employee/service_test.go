package employee_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goto/roster/core/employee"
	"github.com/goto/roster/core/paginate"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Fetch(ctx context.Context, plan paginate.Plan, dest interface{}) (int, error) {
	args := m.Called(ctx, plan, dest)
	if rows, ok := args.Get(0).([]employee.Employee); ok {
		*dest.(*[]employee.Employee) = rows
	}
	return args.Int(1), args.Error(2)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, e employee.Employee) (string, error) {
	args := m.Called(ctx, e)
	return args.String(0), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newService(t *testing.T, repo employee.Repository) *employee.Service {
	t.Helper()
	svc, err := employee.NewService(log.NewNoop(), repo)
	require.NoError(t, err)
	return svc
}

func TestServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the paginated envelope with the fetched rows", func(t *testing.T) {
		rows := []employee.Employee{
			{ID: "deafbeed-0000-4000-8000-000000000001", Name: "Ada Lovelace"},
			{ID: "deafbeed-0000-4000-8000-000000000002", Name: "Grace Hopper"},
		}
		repo := new(mockRepository)
		repo.On("Fetch", ctx, mock.AnythingOfType("paginate.Plan"), mock.Anything).
			Return(rows, 12, nil)
		defer repo.AssertExpectations(t)

		res, err := newService(t, repo).List(ctx, paginate.Query{Path: "/v1/employees"})
		require.NoError(t, err)

		assert.Equal(t, rows, res.Data)
		assert.Equal(t, 12, res.Meta.TotalItems)
		assert.Equal(t, 1, res.Meta.TotalPages)
	})

	t.Run("should wrap repository errors", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Fetch", ctx, mock.AnythingOfType("paginate.Plan"), mock.Anything).
			Return(nil, 0, errors.New("connection refused"))
		defer repo.AssertExpectations(t)

		_, err := newService(t, repo).List(ctx, paginate.Query{Path: "/v1/employees"})
		assert.ErrorContains(t, err, "error listing employees")
	})
}

func TestServiceGetByID(t *testing.T) {
	ctx := context.Background()
	id := "deafbeed-0000-4000-8000-000000000001"

	t.Run("should return the employee from the repository", func(t *testing.T) {
		expected := employee.Employee{ID: id, Name: "Ada Lovelace"}
		repo := new(mockRepository)
		repo.On("GetByID", ctx, id).Return(expected, nil)
		defer repo.AssertExpectations(t)

		e, err := newService(t, repo).GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, expected, e)
	})

	t.Run("should pass a not-found error through", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", ctx, id).Return(employee.Employee{}, employee.NotFoundError{EmployeeID: id})
		defer repo.AssertExpectations(t)

		_, err := newService(t, repo).GetByID(ctx, id)
		assert.ErrorAs(t, err, &employee.NotFoundError{})
	})
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject an invalid employee before touching the repository", func(t *testing.T) {
		repo := new(mockRepository)
		defer repo.AssertExpectations(t)

		_, err := newService(t, repo).Create(ctx, employee.Employee{Name: "No Email"})
		assert.Error(t, err)
	})

	t.Run("should return the stored employee with its new id", func(t *testing.T) {
		e := employee.Employee{Name: "Ada Lovelace", Email: "ada@example.com", Age: 36}
		id := "deafbeed-0000-4000-8000-000000000001"

		repo := new(mockRepository)
		repo.On("Create", ctx, e).Return(id, nil)
		defer repo.AssertExpectations(t)

		created, err := newService(t, repo).Create(ctx, e)
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.Equal(t, e.Name, created.Name)
	})

	t.Run("should pass a duplicate error through", func(t *testing.T) {
		e := employee.Employee{Name: "Ada Lovelace", Email: "ada@example.com"}
		repo := new(mockRepository)
		repo.On("Create", ctx, e).Return("", employee.DuplicateError{Email: e.Email})
		defer repo.AssertExpectations(t)

		_, err := newService(t, repo).Create(ctx, e)
		assert.ErrorAs(t, err, &employee.DuplicateError{})
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	id := "deafbeed-0000-4000-8000-000000000001"

	t.Run("should delete through the repository", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Delete", ctx, id).Return(nil)
		defer repo.AssertExpectations(t)

		assert.NoError(t, newService(t, repo).Delete(ctx, id))
	})
}
