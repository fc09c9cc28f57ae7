package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/tshono/ChromePie/internal/browser"
	"github.com/tshono/ChromePie/internal/format/table"
	"github.com/tshono/ChromePie/internal/prefs"
	"github.com/tshono/ChromePie/internal/resources"
)

// PrintCatalog writes every value a pie slot accepts, with its display name,
// how a tap is dispatched and its glyph.
func PrintCatalog(w io.Writer, catalog *resources.Table) error {
	rows := [][]string{{"VALUE", "NAME", "TAP", "ICON"}}
	for _, e := range catalog.Entries() {
		tap := "dedicated"
		if e.Action != "" {
			tap = "menu " + e.Action
			if _, ok := browser.ParseMenuCommand(e.Action); !ok {
				tap += " (unknown)"
			}
		}
		rows = append(rows, []string{e.Value, e.Name, tap, resources.Glyph(e.Icon)})
	}
	return table.Write(w, rows, nil)
}

// PrintLayout writes the slices configured in the preference file at path.
// The anchor of slice s is slot s; the other slots form its nested ring.
// Keys the menu never reads are listed last.
func PrintLayout(w io.Writer, path string, catalog *resources.Table) error {
	store, err := prefs.Open(path)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	snap, err := store.Reload()
	if err != nil {
		return fmt.Errorf("read preferences: %w", err)
	}
	rows := [][]string{{"SLICE", "ENABLED", "ANCHOR", "NESTED"}}
	for slice := 1; slice <= prefs.MaxSlices; slice++ {
		enabled := snap.Bool(prefs.SliceKey(slice), false)
		anchor := layoutValue(snap, catalog, prefs.ItemKey(slice, slice))
		nested := make([]string, 0, prefs.MaxItems-1)
		for item := 1; item <= prefs.MaxItems; item++ {
			if item == slice {
				continue
			}
			nested = append(nested, layoutValue(snap, catalog, prefs.ItemKey(slice, item)))
		}
		rows = append(rows, []string{
			fmt.Sprint(slice),
			fmt.Sprint(enabled),
			anchor,
			strings.Join(nested, " "),
		})
	}
	if err := table.Write(w, rows, []table.Alignment{table.AlignRight}); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "trigger side: %s\n", snap.TriggerSide()); err != nil {
		return err
	}
	var ignored []string
	for _, key := range snap.Keys() {
		if !prefs.Known(key) {
			ignored = append(ignored, key)
		}
	}
	if len(ignored) > 0 {
		_, err = fmt.Fprintf(w, "ignored keys: %s\n", strings.Join(ignored, ", "))
	}
	return err
}

func layoutValue(snap prefs.Snapshot, catalog *resources.Table, key string) string {
	value, ok := snap.String(key)
	switch {
	case !ok:
		return "-"
	case value == "none":
		return "none"
	}
	if _, known := catalog.Lookup(value); !known {
		if s := catalog.Suggest(value); s != "" {
			return fmt.Sprintf("%s?(%s)", value, s)
		}
		return value + "?"
	}
	return value
}
