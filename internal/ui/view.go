package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/tshono/ChromePie/internal/pie"
	"github.com/tshono/ChromePie/internal/prefs"
	"github.com/tshono/ChromePie/internal/resources"
)

const (
	// chromeLines is the number of rows reserved around the ring for the
	// header, label, status, messages and footer.
	chromeLines     = 6
	minCanvasHeight = 7
	// cellAspect compensates for terminal cells being about twice as tall
	// as they are wide.
	cellAspect    = 2.2
	innerFraction = 0.5
	nestedSpread  = math.Pi * 0.9
	fillerGlyph   = "·"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text is already styled; only ANSI-aware truncation applies
}

// View renders the pie, or the page status while the pie is hidden.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m *Model) render() string {
	lines := make([]styledLine, 0, 24)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})
	if m.isOpen() {
		for _, row := range m.renderRing() {
			lines = append(lines, styledLine{text: row, raw: true})
		}
		lines = append(lines, styledLine{text: m.selectionLabel(), style: styles.Label})
	} else {
		lines = append(lines, styledLine{text: m.pageLine(), style: styles.Info})
	}
	lines = append(lines, styledLine{text: m.statusLine(), style: styles.Status})
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: m.errMsg, style: styles.Error})
	}
	if m.backendLastErr != "" {
		lines = append(lines, styledLine{text: "preferences: " + m.backendLastErr, style: styles.Error})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{text: styles.Footer.Render(m.help.View(m.keys)), raw: true})
	}
	lines = limitHeight(lines, m.height, m.width)
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) header() string {
	title := "chromepie"
	if m.isOpen() && m.edge != prefs.SideBoth {
		title = fmt.Sprintf("%s [%s edge]", title, m.edge)
	}
	return fmt.Sprintf("%s  %s", title, m.browser.URL())
}

func (m *Model) pageLine() string {
	page := m.browser.Page()
	if page == "" {
		page = "web page"
	}
	return fmt.Sprintf("showing %s, press space to open the pie", page)
}

func (m *Model) statusLine() string {
	parts := []string{fmt.Sprintf("%d tabs", m.browser.TabCount())}
	if m.browser.IsIncognito() {
		parts = append(parts, "incognito")
	}
	if m.browser.IsLoading() {
		parts = append(parts, "loading")
	}
	if m.browser.IsFullscreen() {
		parts = append(parts, "fullscreen")
	}
	if m.browser.IsDesktopUserAgent() {
		parts = append(parts, "desktop site")
	}
	return strings.Join(parts, " · ")
}

func (m *Model) selectionLabel() string {
	item := m.selectedItem()
	switch {
	case item == nil:
		return "(no slices)"
	case item.Filler:
		return "(empty)"
	case !item.Enabled:
		return itemLabel(item) + " (unavailable)"
	}
	return itemLabel(item)
}

// renderRing lays the top ring out on an ellipse around the centre and the
// selected slice's nested items on an outer arc facing the same direction.
func (m *Model) renderRing() []string {
	height := m.height - chromeLines
	if height < minCanvasHeight {
		height = minCanvasHeight
	}
	c := newCanvas(m.width, height)

	outerRy := float64(height-1) / 2
	outerRx := math.Min(outerRy*cellAspect, float64(m.width)/2-3)
	if outerRx < 2 {
		outerRx = 2
	}
	innerRx, innerRy := outerRx*innerFraction, math.Max(1, outerRy*innerFraction)

	cy := height / 2
	cx := m.width / 2
	switch m.edge {
	case prefs.SideLeft:
		cx = int(outerRx) + 2
	case prefs.SideRight:
		cx = m.width - int(outerRx) - 3
	}

	center := "◉"
	switch m.edge {
	case prefs.SideLeft:
		center = "◧"
	case prefs.SideRight:
		center = "◨"
	}
	c.place(cy, cx, center, styles.Center)

	items := m.control.Menu().Items()
	for i, item := range items {
		angle := slotAngle(i, len(items))
		row, col := ringPoint(cx, cy, innerRx, innerRy, angle)
		c.place(row, col, itemToken(item), m.topStyle(i, item))
		if i != m.sel.Top.Cursor {
			continue
		}
		children := item.Items()
		for j, child := range children {
			row, col := ringPoint(cx, cy, outerRx, outerRy, nestedAngle(angle, j, len(children)))
			c.place(row, col, itemToken(child), m.childStyle(j, child))
		}
	}
	return c.lines()
}

func (m *Model) topStyle(idx int, item *pie.Item) *lipgloss.Style {
	selected := idx == m.sel.Top.Cursor
	switch {
	case selected && m.sel.Nested:
		return styles.ParentItem
	case selected:
		return styles.SelectedItem
	}
	return itemStyle(item)
}

func (m *Model) childStyle(idx int, item *pie.Item) *lipgloss.Style {
	if !m.sel.Nested {
		return styles.Filler
	}
	if idx == m.sel.Child.Cursor {
		return styles.SelectedItem
	}
	return itemStyle(item)
}

func itemStyle(item *pie.Item) *lipgloss.Style {
	switch {
	case item.Filler:
		return styles.Filler
	case !item.Enabled:
		return styles.DisabledItem
	}
	return styles.Item
}

func itemToken(item *pie.Item) string {
	if item.Filler {
		return " " + fillerGlyph + " "
	}
	return " " + resources.Glyph(item.DisplayIcon()) + item.DisplayText() + " "
}

// slotAngle places slot i of n clockwise from twelve o'clock.
func slotAngle(i, n int) float64 {
	if n <= 0 {
		return -math.Pi / 2
	}
	return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
}

func nestedAngle(parent float64, j, n int) float64 {
	if n <= 1 {
		return parent
	}
	return parent + nestedSpread*(float64(j)/float64(n-1)-0.5)
}

func ringPoint(cx, cy int, rx, ry, angle float64) (row, col int) {
	return cy + int(math.Round(ry*math.Sin(angle))), cx + int(math.Round(rx*math.Cos(angle)))
}

type placement struct {
	col   int
	text  string
	width int
	style *lipgloss.Style
}

// canvas is a sparse grid of styled tokens. Overlapping tokens keep the
// leftmost one.
type canvas struct {
	width int
	rows  [][]placement
}

func newCanvas(width, height int) *canvas {
	return &canvas{width: width, rows: make([][]placement, height)}
}

// place centres text on (row, col), clamped to the canvas width.
func (c *canvas) place(row, col int, text string, style *lipgloss.Style) {
	if row < 0 || row >= len(c.rows) {
		return
	}
	w := ansi.StringWidth(text)
	col -= w / 2
	if col+w > c.width {
		col = c.width - w
	}
	if col < 0 {
		col = 0
	}
	c.rows[row] = append(c.rows[row], placement{col: col, text: text, width: w, style: style})
}

func (c *canvas) lines() []string {
	out := make([]string, len(c.rows))
	for i, row := range c.rows {
		sort.SliceStable(row, func(a, b int) bool { return row[a].col < row[b].col })
		var b strings.Builder
		x := 0
		for _, p := range row {
			if p.col < x {
				continue
			}
			b.WriteString(strings.Repeat(" ", p.col-x))
			if p.style != nil {
				b.WriteString(p.style.Render(p.text))
			} else {
				b.WriteString(p.text)
			}
			x = p.col + p.width
		}
		out[i] = b.String()
	}
	return out
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if !line.raw && line.style != nil {
			out[i] = line.style.Render(line.text)
			continue
		}
		out[i] = line.text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
