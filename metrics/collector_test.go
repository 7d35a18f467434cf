package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("tallies battles and rejections", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddBattle(true, false)
		c.AddBattle(true, true)
		c.AddBattle(false, false)
		c.AddRejection()
		c.SetCompleted(true)

		got := c.Complete()

		require.Equal(t, 3, got.Battles)
		require.Equal(t, 2, got.RoundsWon)
		require.Equal(t, 1, got.Conquests)
		require.Equal(t, 1, got.Rejections)
		require.True(t, got.Completed)
		require.False(t, got.StartTime.IsZero())
		require.GreaterOrEqual(t, got.Duration.Nanoseconds(), int64(0))
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddBattle(true, true)
		c.AddRejection()
		c.SetCompleted(true)

		require.Equal(t, SessionMetric{}, c.Complete())
	})
}
