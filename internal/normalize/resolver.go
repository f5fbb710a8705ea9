package normalize

import (
	"reflect"
	"strings"
)

// Payload is a decoded JSON object. Values are the generic JSON tree produced by
// encoding/json: map[string]any, []any, string, json.Number (or float64), bool, nil.
type Payload = map[string]any

// Path addresses a value inside a Payload, one segment per object level.
type Path []string

// ParsePath splits a dot-separated key path ("attributes.phoneNumber").
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return Path(strings.Split(s, "."))
}

func (p Path) String() string { return strings.Join(p, ".") }

// Child returns a new path with key appended; p is never modified.
func (p Path) Child(key string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, key)
}

// Lookup returns the value at path when it is present and non-null.
// Traversal through a non-object value yields absent.
func Lookup(p Payload, path Path) (any, bool) {
	if p == nil || len(path) == 0 {
		return nil, false
	}
	var cur any = p
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := obj[key]
		if !ok || v == nil {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// Hit is a resolved candidate.
type Hit struct {
	Path  Path
	Value any
}

// Resolve returns the value of the first candidate path that is present and non-null.
func Resolve(p Payload, candidates ...Path) (Hit, bool) {
	for _, c := range candidates {
		if v, ok := Lookup(p, c); ok {
			return Hit{Path: c, Value: v}, true
		}
	}
	return Hit{}, false
}

// ResolveAll returns every present candidate in candidate order.
func ResolveAll(p Payload, candidates ...Path) []Hit {
	var out []Hit
	for _, c := range candidates {
		if v, ok := Lookup(p, c); ok {
			out = append(out, Hit{Path: c, Value: v})
		}
	}
	return out
}

// Field is a logical field with its ordered candidate key paths.
// The first candidate is the primary (canonical) path and names the field in failures.
type Field struct {
	Candidates []Path
}

func field(paths ...string) Field {
	f := Field{Candidates: make([]Path, 0, len(paths))}
	for _, s := range paths {
		f.Candidates = append(f.Candidates, ParsePath(s))
	}
	return f
}

// Primary is the path reported when the field is missing.
func (f Field) Primary() Path {
	if len(f.Candidates) == 0 {
		return nil
	}
	return f.Candidates[0]
}

// Under re-roots every candidate below prefix.
func (f Field) Under(prefix Path) Field {
	out := Field{Candidates: make([]Path, 0, len(f.Candidates))}
	for _, c := range f.Candidates {
		p := make(Path, 0, len(prefix)+len(c))
		p = append(p, prefix...)
		out.Candidates = append(out.Candidates, append(p, c...))
	}
	return out
}

// Resolution is the outcome of resolving a Field against a payload.
type Resolution struct {
	Hit
	Found bool
	// Conflicts lists later candidates whose values disagree with the winning one.
	Conflicts []Hit
}

// ResolveField resolves f and reports disagreeing fallbacks.
func ResolveField(p Payload, f Field) Resolution {
	hits := ResolveAll(p, f.Candidates...)
	if len(hits) == 0 {
		return Resolution{}
	}
	res := Resolution{Hit: hits[0], Found: true}
	for _, h := range hits[1:] {
		if !sameJSON(hits[0].Value, h.Value) {
			res.Conflicts = append(res.Conflicts, h)
		}
	}
	return res
}

func sameJSON(a, b any) bool {
	if an, ok := numberOf(a); ok {
		if bn, ok := numberOf(b); ok {
			return an == bn
		}
	}
	return reflect.DeepEqual(a, b)
}

var payloadIDPaths = []Path{{"_id"}, {"id"}, {"callId"}}

// PayloadID returns the first string identifier found on raw, or "" when raw is
// not an object or carries none. It never validates.
func PayloadID(raw any) string {
	p, ok := raw.(map[string]any)
	if !ok {
		return ""
	}
	for _, path := range payloadIDPaths {
		if v, ok := Lookup(p, path); ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
