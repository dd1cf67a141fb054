package queryset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type site struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Region string `json:"region"`
}

func memorySites() *Memory {
	return NewMemory(site{},
		site{ID: 1, Code: "A1", Region: "US"},
		site{ID: 2, Code: "A1", Region: "EU"},
		site{ID: 3, Code: "B2", Region: "US"},
	)
}

func TestMemory_Get(t *testing.T) {
	qs := memorySites()
	ctx := context.Background()

	obj, err := qs.Get(ctx, map[string]any{"code": "B2", "region": "US"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), obj.(site).ID)

	// Stringified comparison: integer filters match integer attributes
	// regardless of the input's concrete type.
	obj, err = qs.Get(ctx, map[string]any{"id": "2"})
	require.NoError(t, err)
	assert.Equal(t, "EU", obj.(site).Region)

	obj, err = qs.Get(ctx, map[string]any{"id": float64(1)})
	require.NoError(t, err)
	assert.Equal(t, "US", obj.(site).Region)
}

func TestMemory_GetErrors(t *testing.T) {
	qs := memorySites()
	ctx := context.Background()

	_, err := qs.Get(ctx, map[string]any{"code": "Z9", "region": "US"})
	assert.ErrorIs(t, err, ErrObjectDoesNotExist)

	_, err = qs.Get(ctx, map[string]any{"code": "A1"})
	assert.ErrorIs(t, err, ErrMultipleObjects)

	_, err = qs.Get(ctx, map[string]any{"nope": "x"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestMemory_Model(t *testing.T) {
	assert.IsType(t, site{}, memorySites().Model())
}
