package prefs

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	// MaxSlices is the number of top-level radial positions.
	MaxSlices = 6
	// MaxItems is the number of item slots per slice, the anchor included.
	MaxItems = 6

	KeyTriggerSide = "trigger_side"
)

// Side names the screen edge allowed to open the menu.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideBoth  Side = "both"
)

// Allows reports whether an open gesture from edge is permitted.
func (s Side) Allows(edge Side) bool {
	switch s {
	case SideBoth:
		return true
	case SideLeft, SideRight:
		return edge == s
	default:
		return false
	}
}

// SliceKey is the bool preference enabling a slice.
func SliceKey(slice int) string {
	return fmt.Sprintf("screen_slice_%d", slice)
}

// ItemKey is the string preference holding the value id for a slot.
func ItemKey(slice, item int) string {
	return fmt.Sprintf("slice_%d_item_%d", slice, item)
}

var layoutKey = regexp.MustCompile(`^(?:screen_slice_(\d)|slice_(\d)_item_(\d))$`)

// Known reports whether key is one the menu reads.
func Known(key string) bool {
	if key == KeyTriggerSide {
		return true
	}
	m := layoutKey.FindStringSubmatch(key)
	if m == nil {
		return false
	}
	for _, group := range m[1:] {
		if group == "" {
			continue
		}
		if n, _ := strconv.Atoi(group); n < 1 || n > MaxSlices {
			return false
		}
	}
	return true
}
