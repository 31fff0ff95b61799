package guard_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/flaggate/pkg/guard"
)

func TestRequestContext(t *testing.T) {
	t.Parallel()

	t.Run("merge overwrites listed keys and keeps the rest", func(t *testing.T) {
		t.Parallel()
		rc := guard.NewRequestContext()

		rc.Merge(map[string]bool{"a": true, "b": true})
		rc.Merge(map[string]bool{"b": false, "c": true})

		assert.Equal(t, map[string]bool{"a": true, "b": false, "c": true}, rc.Evaluated())
	})

	t.Run("IsFeatureEnabled is strict", func(t *testing.T) {
		t.Parallel()
		rc := guard.NewRequestContext()
		rc.Merge(map[string]bool{"on": true, "off": false})

		assert.True(t, rc.IsFeatureEnabled("on"))
		assert.False(t, rc.IsFeatureEnabled("off"))
		assert.False(t, rc.IsFeatureEnabled("never-evaluated"))
	})

	t.Run("nil carrier is inert", func(t *testing.T) {
		t.Parallel()
		var rc *guard.RequestContext

		rc.Merge(map[string]bool{"a": true})
		assert.False(t, rc.IsFeatureEnabled("a"))
		assert.Nil(t, rc.Evaluated())
	})

	t.Run("Evaluated returns a copy", func(t *testing.T) {
		t.Parallel()
		rc := guard.NewRequestContext()
		rc.Merge(map[string]bool{"a": true})

		snapshot := rc.Evaluated()
		snapshot["a"] = false

		assert.True(t, rc.IsFeatureEnabled("a"))
	})

	t.Run("concurrent merges are safe", func(t *testing.T) {
		t.Parallel()
		rc := guard.NewRequestContext()

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					rc.Merge(map[string]bool{"a": true})
					_ = rc.IsFeatureEnabled("a")
				}
			}()
		}
		wg.Wait()

		assert.True(t, rc.IsFeatureEnabled("a"))
	})
}

func TestIsFeatureEnabled(t *testing.T) {
	t.Parallel()

	t.Run("reads the carrier from context", func(t *testing.T) {
		t.Parallel()
		rc := guard.NewRequestContext()
		rc.Merge(map[string]bool{"beta": true})
		ctx := guard.WithRequestContext(context.Background(), rc)

		assert.True(t, guard.IsFeatureEnabled(ctx, "beta"))
		assert.False(t, guard.IsFeatureEnabled(ctx, "ghost"))
	})

	t.Run("false without a carrier", func(t *testing.T) {
		t.Parallel()
		assert.False(t, guard.IsFeatureEnabled(context.Background(), "beta"))
	})
}
