package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RawRecord is one decoded upstream record before normalisation.
// Fields holds the JSON object as returned by the upstream API.
type RawRecord struct {
	// Type is the resource type the record was fetched as.
	Type ResourceType

	// Fields contains the decoded JSON object.
	Fields map[string]any
}

// Lookup returns the value at a dotted path such as "location.address".
func (r RawRecord) Lookup(path string) (any, bool) {
	var cur any = r.Fields
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// String returns the value at path formatted as text, or "" when missing.
func (r RawRecord) String(path string) string {
	v, ok := r.Lookup(path)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

// ID returns the record identifier, or "" when absent.
func (r RawRecord) ID() string {
	return strings.TrimSpace(r.String("id"))
}
