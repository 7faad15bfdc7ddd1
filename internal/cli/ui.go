package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/easybox/pkg/board"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - dragging
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// boxColors cycles over boxes by index.
var boxColors = []lipgloss.Color{"167", "35", "75", "220", "141", "36"}

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleDragging    = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleFrame       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorDim)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Board Rendering
// =============================================================================

// layoutTable renders the boxes of s as a table in index order.
func layoutTable(s board.Snapshot) string {
	rows := make([][]string, 0, len(s.Boxes))
	for _, v := range s.Boxes {
		state := "idle"
		switch {
		case v.Dragging:
			state = "dragging"
		case !v.Visible:
			state = "hidden"
		}
		rows = append(rows, []string{
			strconv.Itoa(v.Index),
			v.ID,
			v.Label,
			formatPoint(v.Committed.Left, v.Committed.Top),
			formatPoint(v.Size.Width, v.Size.Height),
			state,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "ID", "LABEL", "POSITION", "SIZE", "STATE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return StyleTitle.Padding(0, 1)
			}
			if col == 0 {
				return StyleNumber.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		}).
		String()
}

func formatPoint(a, b float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64) + "," + strconv.FormatFloat(b, 'f', -1, 64)
}

// canvas paints a snapshot onto a character grid, one cell per unit.
type canvas struct {
	width, height int
	cells         [][]string
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([][]string, height)}
	for y := range c.cells {
		c.cells[y] = make([]string, width)
		for x := range c.cells[y] {
			c.cells[y][x] = " "
		}
	}
	return c
}

// drawBoard paints the visible boxes of s at their shown positions. Later
// boxes, and the dragged box last of all, are drawn on top.
func (c *canvas) drawBoard(s board.Snapshot) {
	var dragged *board.View
	for i := range s.Boxes {
		v := s.Boxes[i]
		if !v.Visible {
			continue
		}
		if v.Dragging {
			dragged = &s.Boxes[i]
			continue
		}
		c.drawBox(v, lipgloss.NewStyle().Foreground(boxColors[v.Index%len(boxColors)]))
	}
	if dragged != nil {
		c.drawBox(*dragged, styleDragging)
	}
}

func (c *canvas) drawBox(v board.View, style lipgloss.Style) {
	x0 := int(math.Round(v.Shown.Left))
	y0 := int(math.Round(v.Shown.Top))
	w := int(math.Round(v.Size.Width))
	h := int(math.Round(v.Size.Height))
	if w <= 0 || h <= 0 {
		return
	}

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := "░"
			switch {
			case h > 1 && w > 1 && (dy == 0 || dy == h-1) && (dx == 0 || dx == w-1):
				ch = "+"
			case h > 1 && (dy == 0 || dy == h-1):
				ch = "─"
			case w > 1 && (dx == 0 || dx == w-1):
				ch = "│"
			}
			c.set(x0+dx, y0+dy, style.Render(ch))
		}
	}

	label := v.Label
	if label == "" {
		label = v.ID
	}
	if r := []rune(label); len(r) > w-2 {
		label = string(r[:max(w-2, 0)])
	}
	for i, r := range []rune(label) {
		c.set(x0+1+i, y0+h/2, style.Bold(true).Render(string(r)))
	}
}

func (c *canvas) set(x, y int, s string) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = s
}

func (c *canvas) String() string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		lines[y] = strings.Join(row, "")
	}
	return styleFrame.Render(strings.Join(lines, "\n"))
}
