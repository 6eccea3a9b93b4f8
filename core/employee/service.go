package employee

import (
	"context"
	"fmt"

	"github.com/goto/salt/log"

	"github.com/goto/roster/core/paginate"
)

// listConfig is the list-endpoint contract of the employee directory: which
// columns may be sorted, searched and filtered, and with which operators.
var listConfig = paginate.Config{
	SortableColumns:   []string{"name", "email", "role", "age", "created_at"},
	SearchableColumns: []string{"name", "email"},
	DefaultSortBy:     []paginate.Order{{Column: "created_at", Direction: paginate.DESC}},
	DefaultLimit:      paginate.DefaultLimit,
	MaxLimit:          paginate.DefaultMaxLimit,
	FilterableColumns: map[string][]paginate.Operator{
		"age":  {paginate.OpEq, paginate.OpGt, paginate.OpGte, paginate.OpLt, paginate.OpLte, paginate.OpNot},
		"role": {paginate.OpEq, paginate.OpIn, paginate.OpNot, paginate.OpNull},
		"name": {paginate.OpEq},
	},
}

type Service struct {
	logger     log.Logger
	repository Repository
	config     paginate.Config
}

// NewService validates the list-endpoint configuration up front so that a
// misconfigured whitelist fails at startup, not per request.
func NewService(logger log.Logger, repository Repository) (*Service, error) {
	if err := listConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid employee list config: %w", err)
	}
	return &Service{
		logger:     logger,
		repository: repository,
		config:     listConfig,
	}, nil
}

// List compiles q into a plan, runs it and returns the paginated envelope.
func (s *Service) List(ctx context.Context, q paginate.Query) (paginate.Paginated, error) {
	s.logger.Debug("listing employees", "page", q.Page, "limit", q.Limit, "search", q.Search)

	var employees []Employee
	res, err := paginate.Paginate(ctx, s.repository, s.config, q, &employees)
	if err != nil {
		return paginate.Paginated{}, fmt.Errorf("error listing employees: %w", err)
	}
	return res, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Employee, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, e Employee) (Employee, error) {
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}
	id, err := s.repository.Create(ctx, e)
	if err != nil {
		return Employee{}, err
	}
	e.ID = id
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
