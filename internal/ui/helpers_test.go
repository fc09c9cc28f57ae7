package ui

import (
	"errors"

	"charm.land/lipgloss/v2"
)

var errWatch = errors.New("watch failed")

func lipglossWidth(s string) int {
	return lipgloss.Width(s)
}
