package postgres_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/suite"

	"github.com/goto/roster/core/employee"
	"github.com/goto/roster/core/paginate"
	"github.com/goto/roster/internal/store/postgres"
)

type EmployeeRepositoryTestSuite struct {
	suite.Suite
	ctx        context.Context
	client     *postgres.Client
	repository *postgres.EmployeeRepository
}

func (r *EmployeeRepositoryTestSuite) SetupSuite() {
	logger := log.NewLogrus()
	client, err := newTestClient(r.T(), logger)
	r.Require().NoError(err)

	r.ctx = context.TODO()
	r.client = client
	r.repository, err = postgres.NewEmployeeRepository(client)
	r.Require().NoError(err)
}

func (r *EmployeeRepositoryTestSuite) SetupTest() {
	_, err := r.client.ExecContext(r.ctx, "TRUNCATE TABLE employees")
	r.Require().NoError(err)
}

func (r *EmployeeRepositoryTestSuite) insertEmployee(name, email, role string, age int) string {
	id, err := r.repository.Create(r.ctx, employee.Employee{
		Name:  name,
		Email: email,
		Role:  role,
		Age:   age,
	})
	r.Require().NoError(err)
	return id
}

func (r *EmployeeRepositoryTestSuite) seedDirectory() {
	r.insertEmployee("Ada Lovelace", "ada@example.com", "engineer", 36)
	r.insertEmployee("Alan Turing", "alan@example.com", "engineer", 41)
	r.insertEmployee("Barbara Liskov", "barbara@example.com", "engineer", 68)
	r.insertEmployee("Edsger Dijkstra", "edsger@example.com", "professor", 72)
	r.insertEmployee("Grace Hopper", "grace@example.com", "admiral", 85)
}

func (r *EmployeeRepositoryTestSuite) listConfig() paginate.Config {
	return paginate.Config{
		SortableColumns:   []string{"name", "age", "created_at"},
		SearchableColumns: []string{"name", "email"},
		DefaultSortBy:     []paginate.Order{{Column: "name", Direction: paginate.ASC}},
		FilterableColumns: map[string][]paginate.Operator{
			"age":  {paginate.OpGte, paginate.OpLt, paginate.OpNot},
			"role": {paginate.OpEq, paginate.OpIn, paginate.OpNull},
		},
	}
}

func (r *EmployeeRepositoryTestSuite) listQuery(rawQuery string) paginate.Query {
	values, err := url.ParseQuery(rawQuery)
	r.Require().NoError(err)
	return paginate.NewQueryFromValues(values, "/v1/employees")
}

func (r *EmployeeRepositoryTestSuite) names(data interface{}) []string {
	rows, ok := data.([]employee.Employee)
	r.Require().True(ok)
	names := make([]string, 0, len(rows))
	for _, e := range rows {
		names = append(names, e.Name)
	}
	return names
}

func (r *EmployeeRepositoryTestSuite) TestFetch() {
	r.seedDirectory()

	r.Run("should window and sort the directory", func() {
		var rows []employee.Employee
		res, err := paginate.Paginate(r.ctx, r.repository, r.listConfig(),
			r.listQuery("page=2&limit=2&sortBy=age:ASC"), &rows)
		r.NoError(err)

		r.Equal(5, res.Meta.TotalItems)
		r.Equal(3, res.Meta.TotalPages)
		r.Equal([]string{"Barbara Liskov", "Edsger Dijkstra"}, r.names(res.Data))
		r.NotEmpty(res.Links.Next)
	})

	r.Run("should count totals across the whole filtered set", func() {
		var rows []employee.Employee
		res, err := paginate.Paginate(r.ctx, r.repository, r.listConfig(),
			r.listQuery("limit=2&sortBy=age:ASC&filter.age=%24gte%3A40"), &rows)
		r.NoError(err)

		r.Equal(4, res.Meta.TotalItems)
		r.Equal(2, res.Meta.TotalPages)
		r.Equal([]string{"Alan Turing", "Barbara Liskov"}, r.names(res.Data))
	})

	r.Run("should keep only the last filter statement per column", func() {
		var rows []employee.Employee
		res, err := paginate.Paginate(r.ctx, r.repository, r.listConfig(),
			r.listQuery("sortBy=age:ASC&filter.age=%24gte%3A40&filter.age=%24lt%3A70"), &rows)
		r.NoError(err)

		r.Equal([]string{"Ada Lovelace", "Alan Turing", "Barbara Liskov"}, r.names(res.Data))
	})

	r.Run("should match a membership filter", func() {
		var rows []employee.Employee
		res, err := paginate.Paginate(r.ctx, r.repository, r.listConfig(),
			r.listQuery("filter.role=%24in%3Aadmiral%2Cprofessor"), &rows)
		r.NoError(err)

		r.Equal([]string{"Edsger Dijkstra", "Grace Hopper"}, r.names(res.Data))
	})

	r.Run("should search name and email case-insensitively", func() {
		var rows []employee.Employee
		res, err := paginate.Paginate(r.ctx, r.repository, r.listConfig(),
			r.listQuery("search=ADA"), &rows)
		r.NoError(err)

		r.Equal([]string{"Ada Lovelace"}, r.names(res.Data))
	})

	r.Run("should return an empty page beyond the data", func() {
		var rows []employee.Employee
		res, err := paginate.Paginate(r.ctx, r.repository, r.listConfig(),
			r.listQuery("page=9&limit=2"), &rows)
		r.NoError(err)

		r.Empty(rows)
		r.Equal(5, res.Meta.TotalItems)
		r.Empty(res.Links.Next)
	})
}

func (r *EmployeeRepositoryTestSuite) TestGetByID() {
	r.Run("should return an invalid error for a malformed id", func() {
		_, err := r.repository.GetByID(r.ctx, "not-a-uuid")
		r.ErrorAs(err, &employee.InvalidError{})
	})

	r.Run("should return a not-found error for an unknown id", func() {
		_, err := r.repository.GetByID(r.ctx, uuid.NewString())
		r.ErrorAs(err, &employee.NotFoundError{})
	})

	r.Run("should return the stored employee", func() {
		id := r.insertEmployee("Ada Lovelace", "ada-get@example.com", "engineer", 36)

		emp, err := r.repository.GetByID(r.ctx, id)
		r.NoError(err)
		r.Equal(id, emp.ID)
		r.Equal("Ada Lovelace", emp.Name)
		r.Equal("ada-get@example.com", emp.Email)
		r.Equal(36, emp.Age)
		r.False(emp.CreatedAt.IsZero())
	})
}

func (r *EmployeeRepositoryTestSuite) TestCreate() {
	r.Run("should generate an id for the new row", func() {
		id := r.insertEmployee("Grace Hopper", "grace-create@example.com", "admiral", 85)
		r.NotEmpty(id)
	})

	r.Run("should reject a duplicate email", func() {
		r.insertEmployee("Ada Lovelace", "dup@example.com", "engineer", 36)

		_, err := r.repository.Create(r.ctx, employee.Employee{
			Name:  "Ada Imposter",
			Email: "dup@example.com",
		})
		r.ErrorAs(err, &employee.DuplicateError{})
	})
}

func (r *EmployeeRepositoryTestSuite) TestDelete() {
	r.Run("should return an invalid error for a malformed id", func() {
		err := r.repository.Delete(r.ctx, "not-a-uuid")
		r.ErrorAs(err, &employee.InvalidError{})
	})

	r.Run("should return a not-found error for an unknown id", func() {
		err := r.repository.Delete(r.ctx, uuid.NewString())
		r.ErrorAs(err, &employee.NotFoundError{})
	})

	r.Run("should remove the row", func() {
		id := r.insertEmployee("Alan Turing", "alan-delete@example.com", "engineer", 41)

		r.NoError(r.repository.Delete(r.ctx, id))

		_, err := r.repository.GetByID(r.ctx, id)
		r.ErrorAs(err, &employee.NotFoundError{})
	})
}

func TestEmployeeRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test")
	}
	suite.Run(t, &EmployeeRepositoryTestSuite{})
}
