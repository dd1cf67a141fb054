package fields

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookSerializer() *Serializer {
	return NewBuilder().
		Model(&testBook{}).
		Field("row", NewSequenceField(1, 1)).
		Field("title", NewStringField()).
		Field("status", NewDisplayChoiceField(statusChoices())).
		Field("author", NewComplexPKRelatedField(testAuthors()).ExtraFields("name")).
		Build()
}

func TestSerializer_Serialize(t *testing.T) {
	s := bookSerializer()
	book := testBook{
		ID:     10,
		Title:  "Structure",
		Status: 2,
		Author: testAuthor{ID: 1, Name: "Ada"},
	}

	rep, err := s.Serialize(book)
	require.NoError(t, err)

	assert.Equal(t, int64(1), rep["row"])
	assert.Equal(t, "Structure", rep["title"])
	assert.Equal(t, "Published", rep["status"])
	author := rep["author"].(map[string]any)
	assert.Equal(t, int64(1), author["id"])
	assert.Equal(t, "Ada", author["name"])
}

func TestSerializer_SourceOverride(t *testing.T) {
	s := NewSerializer()
	s.AddField("heading", NewStringField(WithSource("title")))
	s.AddField("author_name", NewStringField(WithSource("author.name")))

	rep, err := s.Serialize(testBook{Title: "Deep", Author: testAuthor{Name: "Grace"}})
	require.NoError(t, err)
	assert.Equal(t, "Deep", rep["heading"])
	assert.Equal(t, "Grace", rep["author_name"])
}

func TestSerializer_Deserialize(t *testing.T) {
	s := bookSerializer()

	out, err := s.Deserialize(context.Background(), map[string]any{
		"title":  "Draft copy",
		"status": "Draft",
		"author": map[string]any{"id": 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "Draft copy", out["title"])
	assert.Equal(t, 1, out["status"])
	assert.Equal(t, "Grace", out["author"].(testAuthor).Name)
	// Read-only fields never appear in inbound output.
	assert.NotContains(t, out, "row")
}

func TestSerializer_DeserializeFieldError(t *testing.T) {
	s := bookSerializer()

	_, err := s.Deserialize(context.Background(), map[string]any{
		"status": "Removed",
	})
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidChoice, verr.Code)
	assert.Contains(t, err.Error(), `"status"`)
}

func TestSerializer_DeserializeSkipsAbsentKeys(t *testing.T) {
	s := bookSerializer()

	out, err := s.Deserialize(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSerializer_Render(t *testing.T) {
	s := NewSerializer()
	s.AddField("title", NewStringField())

	data, err := s.Render(testBook{Title: "Wired"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Wired", decoded["title"])
}

func TestSerializer_RenderAs(t *testing.T) {
	type wireBook struct {
		Row   int64  `json:"row"`
		Title string `json:"title"`
	}
	s := NewSerializer()
	s.AddField("row", NewSequenceField(1, 1))
	s.AddField("title", NewStringField())

	out, err := RenderAs[wireBook](s, testBook{Title: "Typed"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Row)
	assert.Equal(t, "Typed", out.Title)
}

func TestSerializer_RenderManyAs(t *testing.T) {
	type wireBook struct {
		Row   int64  `json:"row"`
		Title string `json:"title"`
	}
	s := NewSerializer()
	s.AddField("row", NewSequenceField(1, 1))
	s.AddField("title", NewStringField())

	out, err := RenderManyAs[wireBook](s, []testBook{{Title: "a"}, {Title: "b"}})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].Row)
	assert.Equal(t, int64(2), out[1].Row)
}

func TestSerializer_DuplicateFieldPanics(t *testing.T) {
	s := NewSerializer()
	s.AddField("title", NewStringField())
	assert.Panics(t, func() { s.AddField("title", NewStringField()) })
}

func TestSerializer_FieldsOrder(t *testing.T) {
	s := bookSerializer()
	assert.Equal(t, []string{"row", "title", "status", "author"}, s.Fields())
}

func TestSerializeMany_RejectsNonSlice(t *testing.T) {
	s := NewSerializer()
	s.AddField("title", NewStringField())
	_, err := s.SerializeMany(testBook{})
	require.Error(t, err)
}
