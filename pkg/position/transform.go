package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Format renders o as a CSS transform.
func Format(o Offset) string {
	return fmt.Sprintf("translate3d(%spx, %spx, 0)", formatPx(o.X), formatPx(o.Y))
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var pxPattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)px`)

// Parse reads the x and y translation from a CSS transform such as
// "translate3d(12px, -4px, 0)" or "translate(12px, -4px)". It returns
// ok=false for an empty or malformed transform instead of an error, so a bad
// frame leaves the box without an offset.
func Parse(transform string) (o Offset, ok bool) {
	transform = strings.TrimSpace(transform)
	if transform == "" || transform == "none" {
		return Offset{}, false
	}
	if !strings.HasPrefix(transform, "translate") {
		return Offset{}, false
	}
	matches := pxPattern.FindAllStringSubmatch(transform, -1)
	if len(matches) < 2 {
		return Offset{}, false
	}
	x, err := strconv.ParseFloat(matches[0][1], 64)
	if err != nil {
		return Offset{}, false
	}
	y, err := strconv.ParseFloat(matches[1][1], 64)
	if err != nil {
		return Offset{}, false
	}
	return Offset{X: x, Y: y}, true
}
