package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func clauseOf(t *testing.T, p Projection) string {
	t.Helper()
	return p.clause()
}

func TestProjectionClauses(t *testing.T) {
	assert.Equal(t, "*", clauseOf(t, AllColumns))
	assert.Equal(t, "count() AS n, max(x)", clauseOf(t, RawClause("count() AS n, max(x)")))
	assert.Equal(t, "a, b, c", clauseOf(t, ColumnList{"a", "b", "c"}))
	assert.Equal(t, "a AS x, b AS y", clauseOf(t, AliasMap{{Column: "a", As: "x"}, {Column: "b", As: "y"}}))
}

func TestProjectionClauses_Empty(t *testing.T) {
	assert.Equal(t, "", ColumnList{}.clause())
	assert.Equal(t, "", AliasMap{}.clause())
	assert.Equal(t, "", RawClause("").clause())
}

func TestParseProjection(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "*"},
		{"string", "*", "*"},
		{"raw list", "a, b", "a, b"},
		{"string slice", []string{"a", "b", "c"}, "a, b, c"},
		{"any slice", []any{"a", "b"}, "a, b"},
		{"string map sorted", map[string]string{"b": "y", "a": "x"}, "a AS x, b AS y"},
		{"any map sorted", map[string]any{"b": "y", "a": "x"}, "a AS x, b AS y"},
		{"projection", ColumnList{"z"}, "z"},
		{"empty slice", []any{}, ""},
		{"empty map", map[string]any{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProjection(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, clauseOf(t, p))
		})
	}
}

func TestParseProjection_Unsupported(t *testing.T) {
	for _, in := range []any{42, 3.5, true, []any{"a", 1}, map[string]any{"a": 1}, struct{}{}} {
		_, err := ParseProjection(in)
		assert.ErrorIs(t, err, ErrInvalidArgument, "input %#v", in)
	}
}

func TestParseProjection_YAMLKeepsOrder(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{"{b: y, a: x}", "b AS y, a AS x"},
		{"[c, a, b]", "c, a, b"},
		{`"*"`, "*"},
		{"user_id, event", "user_id, event"},
		{`["1", a]`, "1, a"},
		{"[]", ""},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			var node yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &node))

			p, err := ParseProjection(&node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, clauseOf(t, p))
		})
	}
}

func TestParseProjection_YAMLRejects(t *testing.T) {
	for _, doc := range []string{"42", "[a, [b]]", "{a: [x]}", "[a, 1]", "[true]", "{a: 1}", "{a: null}", "{1: a}"} {
		var node yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte(doc), &node))

		_, err := ParseProjection(&node)
		assert.ErrorIs(t, err, ErrInvalidArgument, "doc %q", doc)
	}
}
