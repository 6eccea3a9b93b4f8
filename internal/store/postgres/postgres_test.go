package postgres_test

import (
	"testing"

	"github.com/goto/salt/log"

	"github.com/goto/roster/internal/store/postgres"
	"github.com/goto/roster/internal/testutils"
)

func newTestClient(t *testing.T, logger log.Logger) (*postgres.Client, error) {
	t.Helper()

	port, err := testutils.RunTestPG(t, logger)
	if err != nil {
		return nil, err
	}

	cfg := postgres.Config{
		Host:     testutils.PGHost,
		Port:     port,
		Name:     testutils.PGName,
		User:     testutils.PGUsername,
		Password: testutils.PGPassword,
		SSLMode:  "disable",
	}

	client, err := postgres.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if err := testutils.RunMigrationsWithClient(t, client, cfg); err != nil {
		return nil, err
	}

	return client, nil
}
