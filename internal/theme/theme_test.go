package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expenseflow/internal/kv"
)

func TestDefaults(t *testing.T) {
	s, err := NewStore(context.Background(), kv.NewMemory())
	require.NoError(t, err)
	assert.Equal(t, Light, s.Mode())
	assert.Equal(t, "green", s.Colors().Name)
}

func TestTogglePersists(t *testing.T) {
	ctx := context.Background()
	substrate := kv.NewMemory()
	s, err := NewStore(ctx, substrate)
	require.NoError(t, err)

	mode, err := s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)

	reloaded, err := NewStore(ctx, substrate)
	require.NoError(t, err)
	assert.Equal(t, Dark, reloaded.Mode())

	mode, err = s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, Light, mode)
}

func TestRotateColorsWrapsAround(t *testing.T) {
	ctx := context.Background()
	substrate := kv.NewMemory()
	s, err := NewStore(ctx, substrate)
	require.NoError(t, err)

	want := []string{"blue", "purple", "pink", "amber", "green"}
	for _, name := range want {
		p, err := s.RotateColors(ctx)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
	}

	reloaded, err := NewStore(ctx, substrate)
	require.NoError(t, err)
	assert.Equal(t, "green", reloaded.Colors().Name)
}

func TestBadPersistedIndexFallsBack(t *testing.T) {
	ctx := context.Background()
	substrate := kv.NewMemory()
	require.NoError(t, substrate.Set(ctx, kv.KeyColorIndex, "nonsense"))

	s, err := NewStore(ctx, substrate)
	require.NoError(t, err)
	assert.Equal(t, "green", s.Colors().Name)
}
