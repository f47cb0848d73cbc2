package kernel_test

import (
	"testing"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should stamp creator", func(t *testing.T) {
		l, err := kernel.BeginLifecycle("planner-1", created)

		require.NoError(t, err)
		assert.Equal(t, "planner-1", l.CreateUserID())
		assert.Equal(t, created, l.CreateTime())
		assert.False(t, l.IsEnded())
		assert.Nil(t, l.FinishTime())
	})

	t.Run("should require creator", func(t *testing.T) {
		_, err := kernel.BeginLifecycle("", created)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should end exactly once", func(t *testing.T) {
		l, _ := kernel.BeginLifecycle("planner-1", created)
		finished := created.Add(time.Hour)

		require.NoError(t, l.End("manager-1", finished))
		err := l.End("manager-2", finished.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, "manager-1", l.FinishUserID())
		assert.Equal(t, finished, *l.FinishTime())
	})
}
