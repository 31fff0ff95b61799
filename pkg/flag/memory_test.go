package flag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flaggate/pkg/flag"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("NewMemoryStore", func(t *testing.T) {
		t.Parallel()

		store := flag.NewMemoryStore()
		require.NotNil(t, store)

		store = flag.NewMemoryStore(
			&flag.Record{Name: "beta", Enabled: true, AllowedUsers: []string{"u1"}},
			nil, // nil seeds are skipped
		)

		allowed, err := store.IsUserAllowed(ctx, "beta", "u1")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("seed records are copied", func(t *testing.T) {
		t.Parallel()

		seed := &flag.Record{Name: "beta", Enabled: true, AllowedUsers: []string{"u1"}}
		store := flag.NewMemoryStore(seed)

		// Mutating the seed after construction must not leak into the store.
		seed.AllowedUsers[0] = "intruder"

		allowed, err := store.IsUserAllowed(ctx, "beta", "u1")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("SetFlag replaces the whole record", func(t *testing.T) {
		t.Parallel()
		store := flag.NewMemoryStore()

		require.NoError(t, store.SetFlag(ctx, "beta", true, "u1", "u2"))
		require.NoError(t, store.SetFlag(ctx, "beta", true, "u3"))

		record, err := store.GetRecord(ctx, "beta")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, []string{"u3"}, record.AllowedUsers)

		require.NoError(t, store.SetFlag(ctx, "beta", true))
		record, err = store.GetRecord(ctx, "beta")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Empty(t, record.AllowedUsers)
	})

	t.Run("empty name is a valid opaque key", func(t *testing.T) {
		t.Parallel()
		store := flag.NewMemoryStore()

		require.NoError(t, store.SetFlag(ctx, "", true))

		allowed, err := store.IsUserAllowed(ctx, "", "anyone")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("GetRecord returns nil for unknown flag", func(t *testing.T) {
		t.Parallel()
		store := flag.NewMemoryStore()

		record, err := store.GetRecord(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("GetRecord returns a copy", func(t *testing.T) {
		t.Parallel()
		store := flag.NewMemoryStore()
		require.NoError(t, store.SetFlag(ctx, "beta", true, "u1"))

		record, err := store.GetRecord(ctx, "beta")
		require.NoError(t, err)
		record.AllowedUsers[0] = "intruder"

		allowed, err := store.IsUserAllowed(ctx, "beta", "u1")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("decision semantics", func(t *testing.T) {
		t.Parallel()

		store := flag.NewMemoryStore(
			&flag.Record{Name: "disabled", Enabled: false, AllowedUsers: []string{"u1"}},
			&flag.Record{Name: "global", Enabled: true},
			&flag.Record{Name: "targeted", Enabled: true, AllowedUsers: []string{"u1", "u2"}},
		)

		cases := []struct {
			name    string
			flag    string
			userID  string
			allowed bool
		}{
			{"disabled denies listed user", "disabled", "u1", false},
			{"global allows anyone", "global", "anyone", true},
			{"targeted allows listed user", "targeted", "u1", true},
			{"targeted denies unlisted user", "targeted", "u3", false},
			{"unknown flag denies", "ghost", "anyone", false},
		}
		for _, tc := range cases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				allowed, err := store.IsUserAllowed(ctx, tc.flag, tc.userID)
				require.NoError(t, err)
				assert.Equal(t, tc.allowed, allowed)
			})
		}
	})
}
