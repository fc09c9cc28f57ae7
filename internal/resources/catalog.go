// Package resources provides the pie item catalog (value id to display name,
// generic action string and icon key) and the icon glyphs used to draw items.
package resources

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Entry describes one selectable pie value.
type Entry struct {
	Value  string `yaml:"value"`
	Name   string `yaml:"name"`
	Action string `yaml:"action,omitempty"`
	Icon   string `yaml:"icon"`
}

// Table is an ordered mapping from value id to Entry.
type Table struct {
	entries []Entry
	index   map[string]int
}

// Default returns the built-in catalog.
func Default() *Table {
	table, err := Parse(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return table
}

// Parse decodes a YAML list of entries.
func Parse(data []byte) (*Table, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(entries)
}

// New builds a table. The first occurrence of a value wins, matching a
// positional first-index lookup.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		e.Value = strings.TrimSpace(e.Value)
		if e.Value == "" {
			return nil, fmt.Errorf("catalog entry %d has no value", i)
		}
		if _, dup := t.index[e.Value]; dup {
			continue
		}
		if e.Name == "" {
			e.Name = e.Value
		}
		t.index[e.Value] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// FromParallel ingests the three index-aligned string arrays the host exposes
// (display action strings, value ids, icon keys) plus optional display names.
// Misaligned arrays are rejected instead of resolving to the wrong entry.
func FromParallel(names, actions, values, icons []string) (*Table, error) {
	if len(actions) != len(values) || len(icons) != len(values) {
		return nil, fmt.Errorf("parallel tables misaligned: %d actions, %d values, %d icons", len(actions), len(values), len(icons))
	}
	if names != nil && len(names) != len(values) {
		return nil, fmt.Errorf("parallel tables misaligned: %d names, %d values", len(names), len(values))
	}
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Value: v, Action: actions[i], Icon: icons[i]}
		if names != nil {
			entries[i].Name = names[i]
		}
	}
	return New(entries)
}

// Lookup resolves a configured value.
func (t *Table) Lookup(value string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	i, ok := t.index[value]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns the catalog in declaration order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return append([]Entry(nil), t.entries...)
}

// Values returns the value ids in declaration order.
func (t *Table) Values() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Value
	}
	return out
}

// Suggest returns the closest known value for an unknown one, or "".
func (t *Table) Suggest(value string) string {
	value = strings.TrimSpace(value)
	if t == nil || value == "" {
		return ""
	}
	values := t.Values()
	ranks := fuzzy.RankFindFold(value, values)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDist := "", -1
	for _, v := range values {
		d := fuzzy.LevenshteinDistance(strings.ToLower(value), v)
		if bestDist < 0 || d < bestDist {
			best, bestDist = v, d
		}
	}
	if bestDist < 0 || bestDist > len(value)/2+1 {
		return ""
	}
	return best
}
