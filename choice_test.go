package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusChoices() []Choice {
	return []Choice{
		{Value: 1, Label: "Draft"},
		{Value: 2, Label: "Published"},
		{Value: 3, Label: "Archived"},
	}
}

func TestDisplayChoiceField_Representation(t *testing.T) {
	f := NewDisplayChoiceField(statusChoices())

	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "mapped integer", value: 1, want: "Draft"},
		{name: "mapped integer as string", value: "2", want: "Published"},
		{name: "nil passes through", value: nil, want: nil},
		{name: "empty string passes through", value: "", want: ""},
		{name: "unmapped falls back to raw", value: 9, want: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Representation(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayChoiceField_InternalValue(t *testing.T) {
	f := NewDisplayChoiceField(statusChoices())
	ctx := context.Background()

	got, err := f.InternalValue(ctx, "Published")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = f.InternalValue(ctx, "Removed")
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidChoice, verr.Code)
}

func TestDisplayChoiceField_RoundTrip(t *testing.T) {
	f := NewDisplayChoiceField(statusChoices())
	ctx := context.Background()

	for _, c := range f.Choices() {
		label, err := f.Representation(c.Value)
		require.NoError(t, err)
		assert.Equal(t, c.Label, label)

		value, err := f.InternalValue(ctx, label)
		require.NoError(t, err)
		assert.Equal(t, c.Value, value)
	}
}

func TestDisplayChoiceField_DuplicatesPanic(t *testing.T) {
	assert.Panics(t, func() {
		NewDisplayChoiceField([]Choice{
			{Value: 1, Label: "One"},
			{Value: "1", Label: "Other"},
		})
	})
	assert.Panics(t, func() {
		NewDisplayChoiceField([]Choice{
			{Value: 1, Label: "Same"},
			{Value: 2, Label: "Same"},
		})
	})
}
