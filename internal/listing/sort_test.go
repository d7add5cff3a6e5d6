package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortClause(t *testing.T) {
	cases := []struct {
		name string
		q    Query
		want string
	}{
		{"default newest first", Query{}, "created_at DESC"},
		{"created_at ascending", Query{Sort: "created_at"}, "created_at ASC"},
		{"created_at descending", Query{Sort: "created_at", Desc: true}, "created_at DESC"},
		{"price ascending", Query{Sort: "price"}, "price ASC"},
		{"name descending", Query{Sort: "name", Desc: true}, "name DESC"},
		{"unknown column falls back", Query{Sort: "price; DROP TABLE listings"}, "created_at DESC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sortClause(tc.q))
		})
	}
}
