package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// enumTable holds the name and parse index of one code-valued enum.
type enumTable[T ~uint32] struct {
	kind  string
	names map[T]string
	index map[string]T
}

// newEnumTable builds a table from canonical names plus extra aliases
// (GL spellings such as "LEQUAL" or "INCR_WRAP").
func newEnumTable[T ~uint32](kind string, names map[T]string, aliases map[string]T) *enumTable[T] {
	t := &enumTable[T]{
		kind:  kind,
		names: names,
		index: make(map[string]T, len(names)+len(aliases)),
	}
	for v, name := range names {
		t.index[foldName(name)] = v
	}
	for alias, v := range aliases {
		t.index[foldName(alias)] = v
	}
	return t
}

// foldName reduces a name to its lookup key: case-folded, without a GL_
// prefix and without separators, so "less_equal", "LessEqual" and
// "GL_LESS_EQUAL" share a key.
func foldName(s string) string {
	s = cases.Fold().String(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "gl_")
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ', '.':
			return -1
		}
		return r
	}, s)
}

func (t *enumTable[T]) name(v T) string {
	if n, ok := t.names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%#x)", t.kind, uint32(v))
}

func (t *enumTable[T]) valid(v T) bool {
	_, ok := t.names[v]
	return ok
}

func (t *enumTable[T]) fromCode(code uint32) (T, error) {
	v := T(code)
	if !t.valid(v) {
		return 0, fmt.Errorf("pipeline: %s code %#x: %w", t.kind, code, ErrUnknownCode)
	}
	return v, nil
}

// parse accepts a name, an alias, or a numeric code in any base strconv
// understands ("0x203", "515").
func (t *enumTable[T]) parse(s string) (T, error) {
	if code, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32); err == nil {
		return t.fromCode(uint32(code))
	}
	if v, ok := t.index[foldName(s)]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("pipeline: %s %q: %w", t.kind, s, ErrUnknownName)
}

// node renders v as its hex code with the name as a line comment.
func (t *enumTable[T]) node(v T) *yaml.Node {
	return &yaml.Node{
		Kind:        yaml.ScalarNode,
		Tag:         "!!int",
		Value:       fmt.Sprintf("%#x", uint32(v)),
		LineComment: t.name(v),
	}
}

func (t *enumTable[T]) decode(n *yaml.Node, dst *T) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("pipeline: %s at line %d: expected a scalar", t.kind, n.Line)
	}
	v, err := t.parse(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*dst = v
	return nil
}
