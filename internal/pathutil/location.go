package pathutil

import (
	"strconv"
	"strings"
)

// Location is an immutable JSON Pointer into a document.
// The zero value is the document root.
type Location struct {
	segments []string
}

// Root returns the location of the document root.
func Root() Location {
	return Location{}
}

// ParsePointer builds a Location from a local JSON Pointer such as
// "#/components/schemas/Pet". The leading "#" is optional.
func ParsePointer(pointer string) Location {
	pointer = strings.TrimPrefix(pointer, "#")
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return Location{}
	}
	parts := strings.Split(pointer, "/")
	for i, p := range parts {
		parts[i] = Unescape(p)
	}
	return Location{segments: parts}
}

// Child returns a new Location extended by key.
func (l Location) Child(key string) Location {
	segments := make([]string, len(l.segments), len(l.segments)+1)
	copy(segments, l.segments)
	return Location{segments: append(segments, key)}
}

// ChildIndex returns a new Location extended by an array index.
func (l Location) ChildIndex(i int) Location {
	return l.Child(strconv.Itoa(i))
}

// Segments returns a copy of the unescaped path segments.
func (l Location) Segments() []string {
	out := make([]string, len(l.segments))
	copy(out, l.segments)
	return out
}

// Len returns the number of segments.
func (l Location) Len() int {
	return len(l.segments)
}

// String renders the location as an escaped JSON Pointer fragment.
func (l Location) String() string {
	if len(l.segments) == 0 {
		return "#"
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, seg := range l.segments {
		b.WriteByte('/')
		b.WriteString(Escape(seg))
	}
	return b.String()
}

// Escape escapes a single JSON Pointer reference token.
// Per RFC 6901, "~" is written as "~0" and "/" as "~1".
func Escape(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// Unescape reverses Escape. "~1" is replaced before "~0" so that "~01"
// decodes to "~1" rather than "/".
func Unescape(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}
