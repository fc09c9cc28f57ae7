package prefs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Snapshot is an immutable view of the preference store taken at one reload.
type Snapshot struct {
	values map[string]interface{}
}

// NewSnapshot copies values into a snapshot.
func NewSnapshot(values map[string]interface{}) Snapshot {
	copied := make(map[string]interface{}, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Snapshot{values: copied}
}

// Len returns the number of keys present.
func (s Snapshot) Len() int {
	return len(s.values)
}

// Keys returns the present keys in sorted order.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key is present.
func (s Snapshot) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Bool returns a boolean preference. String values are parsed so that files
// written by hand ("true", "1") behave like typed ones.
func (s Snapshot) Bool(key string, fallback bool) bool {
	v, ok := s.values[key]
	if !ok {
		return fallback
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return fallback
		}
		return parsed
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return fallback
	}
}

// String returns a string preference and whether the key is present.
func (s Snapshot) String(key string) (string, bool) {
	v, ok := s.values[key]
	if !ok || v == nil {
		return "", false
	}
	if str, ok := v.(string); ok {
		return str, true
	}
	return fmt.Sprint(v), true
}

// StringOr returns a string preference or fallback when absent.
func (s Snapshot) StringOr(key, fallback string) string {
	if v, ok := s.String(key); ok {
		return v
	}
	return fallback
}

// TriggerSide returns the configured open edge, defaulting to both.
func (s Snapshot) TriggerSide() Side {
	switch side := Side(strings.ToLower(strings.TrimSpace(s.StringOr(KeyTriggerSide, string(SideBoth))))); side {
	case SideLeft, SideRight, SideBoth:
		return side
	default:
		return SideBoth
	}
}
