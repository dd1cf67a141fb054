package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryKeyRelatedField_InternalValue(t *testing.T) {
	f := NewPrimaryKeyRelatedField(testAuthors())
	ctx := context.Background()

	obj, err := f.InternalValue(ctx, int64(1))
	require.NoError(t, err)
	author, ok := obj.(testAuthor)
	require.True(t, ok)
	assert.Equal(t, "Ada", author.Name)

	// String input matches the integer pk.
	obj, err = f.InternalValue(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Grace", obj.(testAuthor).Name)
}

func TestPrimaryKeyRelatedField_DoesNotExist(t *testing.T) {
	f := NewPrimaryKeyRelatedField(testAuthors())

	_, err := f.InternalValue(context.Background(), 99)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeDoesNotExist, verr.Code)
	assert.Contains(t, verr.Message, `"99"`)
}

func TestPrimaryKeyRelatedField_IncorrectType(t *testing.T) {
	f := NewPrimaryKeyRelatedField(testAuthors())

	_, err := f.InternalValue(context.Background(), []any{1})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeIncorrectType, verr.Code)
}

func TestPrimaryKeyRelatedField_Representation(t *testing.T) {
	f := NewPrimaryKeyRelatedField(testAuthors())

	pk, err := f.Representation(testAuthor{ID: 7, Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), pk)

	// A scalar is already the pk.
	pk, err = f.Representation(int64(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), pk)
}

func TestPrimaryKeyRelatedField_CustomPKName(t *testing.T) {
	type tag struct {
		Slug string `json:"slug"`
	}
	qs := testTagQueryset(tag{Slug: "go"}, tag{Slug: "sql"})
	f := NewPrimaryKeyRelatedField(qs, WithPKName("slug"))

	obj, err := f.InternalValue(context.Background(), "sql")
	require.NoError(t, err)
	assert.Equal(t, "sql", obj.(tag).Slug)
}
