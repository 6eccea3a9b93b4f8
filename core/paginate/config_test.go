package paginate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/roster/core/paginate"
)

func TestConfigValidate(t *testing.T) {
	t.Run("should reject an empty sortable-columns whitelist", func(t *testing.T) {
		assert.Error(t, paginate.Config{}.Validate())
		assert.Error(t, paginate.Config{SortableColumns: []string{}}.Validate())
	})

	t.Run("should accept a config with at least one sortable column", func(t *testing.T) {
		cfg := paginate.Config{SortableColumns: []string{"name"}}
		assert.NoError(t, cfg.Validate())
	})
}
