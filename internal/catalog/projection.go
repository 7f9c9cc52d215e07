package catalog

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Projection selects the columns a pull returns. The variants are
// RawClause, AliasMap and ColumnList.
type Projection interface {
	clause() string
}

// RawClause is inserted into the query verbatim.
type RawClause string

// AllColumns selects every column.
const AllColumns RawClause = "*"

func (r RawClause) clause() string { return string(r) }

type Alias struct {
	Column string
	As     string
}

// AliasMap renders "<column> AS <alias>" for each entry, in slice order.
// An empty map renders nothing and the server rejects the query.
type AliasMap []Alias

func (m AliasMap) clause() string {
	parts := make([]string, len(m))
	for i, a := range m {
		parts[i] = a.Column + " AS " + a.As
	}
	return strings.Join(parts, ", ")
}

// ColumnList renders its entries comma separated, in order.
type ColumnList []string

func (l ColumnList) clause() string { return strings.Join(l, ", ") }

// ParseProjection resolves loosely typed input, such as decoded YAML or
// JSON, into a Projection. Plain Go maps have no order, so their aliases
// are sorted by column; decode into a *yaml.Node to keep document order.
func ParseProjection(v any) (Projection, error) {
	switch v := v.(type) {
	case nil:
		return AllColumns, nil
	case Projection:
		return v, nil
	case string:
		return RawClause(v), nil
	case []string:
		return append(ColumnList(nil), v...), nil
	case []any:
		cols := make(ColumnList, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, unsupported(item)
			}
			cols = append(cols, s)
		}
		return cols, nil
	case map[string]string:
		m := make(AliasMap, 0, len(v))
		for col, as := range v {
			m = append(m, Alias{Column: col, As: as})
		}
		sortAliases(m)
		return m, nil
	case map[string]any:
		m := make(AliasMap, 0, len(v))
		for col, as := range v {
			s, ok := as.(string)
			if !ok {
				return nil, unsupported(as)
			}
			m = append(m, Alias{Column: col, As: s})
		}
		sortAliases(m)
		return m, nil
	case *yaml.Node:
		return projectionFromNode(v)
	case yaml.Node:
		return projectionFromNode(&v)
	default:
		return nil, unsupported(v)
	}
}

func projectionFromNode(n *yaml.Node) (Projection, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return AllColumns, nil
		}
		return projectionFromNode(n.Content[0])
	case yaml.ScalarNode:
		s, err := nodeString(n)
		if err != nil {
			return nil, err
		}
		return RawClause(s), nil
	case yaml.SequenceNode:
		cols := make(ColumnList, 0, len(n.Content))
		for _, item := range n.Content {
			s, err := nodeString(item)
			if err != nil {
				return nil, err
			}
			cols = append(cols, s)
		}
		return cols, nil
	case yaml.MappingNode:
		m := make(AliasMap, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			col, err := nodeString(n.Content[i])
			if err != nil {
				return nil, err
			}
			as, err := nodeString(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m = append(m, Alias{Column: col, As: as})
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml node kind %d", ErrInvalidArgument, n.Kind)
	}
}

// nodeString accepts only string scalars, so `42` or `true` fail the same
// way wherever they appear.
func nodeString(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: column identifiers must be strings (line %d)", ErrInvalidArgument, n.Line)
	}
	if n.ShortTag() != "!!str" {
		return "", fmt.Errorf("%w: columns must be a string or an iterable of column identifiers, got %s (line %d)", ErrInvalidArgument, n.ShortTag(), n.Line)
	}
	return n.Value, nil
}

func sortAliases(m AliasMap) {
	sort.Slice(m, func(i, j int) bool { return m[i].Column < m[j].Column })
}

func unsupported(v any) error {
	return fmt.Errorf("%w: columns must be a string or an iterable of column identifiers, got %T", ErrInvalidArgument, v)
}
