package fields

import (
	"time"

	"github.com/restkit/fields/queryset"
)

// Shared test models. Authors are the relation target throughout.

type testAuthor struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" label:"Author name" help:"Full legal name."`
	Status int    `json:"status"`
	Active bool   `json:"active"`
}

func (a testAuthor) String() string { return a.Name }

type testBook struct {
	ID     int64      `json:"id"`
	Title  string     `json:"title"`
	Status int        `json:"status"`
	Author testAuthor `json:"author"`
}

func testAuthors() *queryset.Memory {
	return queryset.NewMemory(testAuthor{},
		testAuthor{ID: 1, Name: "Ada", Status: 1, Active: true},
		testAuthor{ID: 2, Name: "Grace", Status: 2, Active: false},
	)
}

func testTagQueryset[T any](items ...T) *queryset.Memory {
	anyItems := make([]any, len(items))
	for i, item := range items {
		anyItems[i] = item
	}
	var zero T
	return queryset.NewMemory(zero, anyItems...)
}

func testTime() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}
