// Package document implements the resume document tree: path addressing,
// persistent (copy-on-write) updates, and the append-with-dedup merge
// semantics used when accepted proposals target array fields.
//
// A path is a sequence of dot-separated segments. A segment is either a
// plain field name ("profile") or an indexed array field ("experience[0]").
// Documents are generic JSON trees (map[string]any / []any / scalars) so
// that path operations compose without reflection over the typed model.
package document

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Document is the runtime representation of a (partial) resume.
type Document = map[string]any

var arraySegmentRe = regexp.MustCompile(`^(\w+)\[(\d+)\]$`)

// Segment is a single parsed path element.
type Segment struct {
	Field   string
	Index   int // valid only when IsArray
	IsArray bool
}

// ParsePath splits a path expression into segments. An empty path or a
// malformed segment is a caller bug and returns an error.
func ParsePath(path string) ([]Segment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty path")
	}

	parts := strings.Split(path, ".")
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if m := arraySegmentRe.FindStringSubmatch(part); m != nil {
			index, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("invalid array index in segment %q: %w", part, err)
			}
			segments = append(segments, Segment{Field: m[1], Index: index, IsArray: true})
			continue
		}
		if part == "" || strings.ContainsAny(part, "[]") {
			return nil, fmt.Errorf("malformed path segment %q in %q", part, path)
		}
		segments = append(segments, Segment{Field: part})
	}
	return segments, nil
}

// GetValue walks the document along path and returns the value found, or
// nil when any segment is missing, not array-shaped where an index is
// required, or indexed out of bounds. Absence is "not yet known", never an
// error.
func GetValue(doc Document, path string) any {
	segments, err := ParsePath(path)
	if err != nil {
		return nil
	}

	var current any = doc
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		if seg.IsArray {
			arr, ok := m[seg.Field].([]any)
			if !ok || seg.Index >= len(arr) {
				return nil
			}
			current = arr[seg.Index]
			continue
		}
		value, exists := m[seg.Field]
		if !exists {
			return nil
		}
		current = value
	}
	return current
}

// SetValue returns a new document with path set to value. Intermediate
// containers are created as needed: objects for plain segments, arrays
// padded with empty placeholder objects up to the required index for array
// segments. The input document is never mutated; only the spine from the
// root to the target is copied, untouched branches are shared.
func SetValue(doc Document, path string, value any) (Document, error) {
	segments, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	updated := setNode(doc, segments, value)
	root, ok := updated.(map[string]any)
	if !ok {
		// First segment is always a field set on a map, so this cannot
		// happen with a parsed path.
		return nil, fmt.Errorf("path %q does not address into an object", path)
	}
	return root, nil
}

func setNode(current any, segments []Segment, value any) any {
	if len(segments) == 0 {
		return value
	}

	seg := segments[0]
	m := copyMap(current)

	if !seg.IsArray {
		m[seg.Field] = setNode(m[seg.Field], segments[1:], value)
		return m
	}

	existing, _ := m[seg.Field].([]any)
	length := len(existing)
	if seg.Index+1 > length {
		length = seg.Index + 1
	}
	arr := make([]any, length)
	copy(arr, existing)
	for i := len(existing); i < length; i++ {
		arr[i] = map[string]any{}
	}
	arr[seg.Index] = setNode(arr[seg.Index], segments[1:], value)
	m[seg.Field] = arr
	return m
}

// copyMap shallow-copies a map node, treating anything that is not a map
// (including nil) as an empty object to overwrite.
func copyMap(node any) map[string]any {
	m, ok := node.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
