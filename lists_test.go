package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListField(t *testing.T) {
	f := NewStringListField()
	ctx := context.Background()

	got, err := f.InternalValue(ctx, []any{"a", "b", 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "3"}, got)

	got, err = f.Representation([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)

	_, err = f.InternalValue(ctx, "not a list")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalid, verr.Code)
}

func TestIntegerListField(t *testing.T) {
	f := NewIntegerListField()
	ctx := context.Background()

	got, err := f.InternalValue(ctx, []any{1, "2", 3.0})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)

	_, err = f.InternalValue(ctx, []any{1, "two"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalid, verr.Code)
	assert.Contains(t, verr.Message, "Element 1")

	_, err = f.InternalValue(ctx, nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalid, verr.Code)
}
