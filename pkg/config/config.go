// Package config loads board definitions from TOML files.
//
// A board file declares the container and its boxes:
//
//	[container]
//	width = 80
//	height = 24
//	gap = 1
//	lock_inside_parent = true
//
//	[[box]]
//	id = "inbox"
//	label = "Inbox"
//	width = 20
//	height = 6
//
//	[[box]]
//	label = "Calendar"   # id generated when omitted
//	width = 30
//	height = 8
//	hidden = true
//
// Box declaration order is the initial index order.
package config

import (
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/easybox/pkg/errors"
)

// Default container dimensions, sized for an 80x24 terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 22
	DefaultGap    = 1
)

// Board is a complete board definition.
type Board struct {
	Container Container `toml:"container"`
	Boxes     []Box     `toml:"box"`
}

// Container describes the layout container.
type Container struct {
	Width            float64 `toml:"width"`
	Height           float64 `toml:"height"`
	Gap              float64 `toml:"gap"`
	LockInsideParent bool    `toml:"lock_inside_parent"`
}

// Box is the external configuration of one box.
type Box struct {
	ID     string  `toml:"id" json:"id,omitempty"`
	Label  string  `toml:"label" json:"label,omitempty"`
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
	Hidden bool    `toml:"hidden" json:"hidden,omitempty"`
}

// Default returns a small demo board.
func Default() *Board {
	b := &Board{
		Container: Container{
			Width:            DefaultWidth,
			Height:           DefaultHeight,
			Gap:              DefaultGap,
			LockInsideParent: true,
		},
		Boxes: []Box{
			{ID: "red", Label: "Red", Width: 16, Height: 5},
			{ID: "green", Label: "Green", Width: 24, Height: 5},
			{ID: "blue", Label: "Blue", Width: 12, Height: 7},
			{ID: "amber", Label: "Amber", Width: 20, Height: 4},
			{ID: "violet", Label: "Violet", Width: 14, Height: 6},
		},
	}
	return b
}

// Load reads and validates a board file.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "board file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read board file %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a board definition. Missing container
// dimensions fall back to the defaults and missing box IDs are generated.
func Parse(data []byte) (*Board, error) {
	var b Board
	md, err := toml.Decode(string(data), &b)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode board")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown board key %q", undecoded[0].String())
	}
	b.applyDefaults(md)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Board) applyDefaults(md toml.MetaData) {
	if b.Container.Width == 0 {
		b.Container.Width = DefaultWidth
	}
	if b.Container.Height == 0 {
		b.Container.Height = DefaultHeight
	}
	if !md.IsDefined("container", "gap") {
		b.Container.Gap = DefaultGap
	}
	for i := range b.Boxes {
		if b.Boxes[i].ID == "" {
			b.Boxes[i].ID = NewID()
		}
	}
}

// Validate checks container dimensions, box sizes and ID uniqueness.
func (b *Board) Validate() error {
	c := b.Container
	if err := errors.ValidateDimension("container width", c.Width, 0); err != nil {
		return err
	}
	if err := errors.ValidateDimension("container height", c.Height, 0); err != nil {
		return err
	}
	if c.Gap < 0 || math.IsNaN(c.Gap) || math.IsInf(c.Gap, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "gap must be a finite, non-negative number, got %v", c.Gap)
	}

	seen := make(map[string]bool, len(b.Boxes))
	for _, bx := range b.Boxes {
		if err := bx.Validate(c); err != nil {
			return err
		}
		if seen[bx.ID] {
			return errors.New(errors.ErrCodeDuplicateBox, "duplicate box id %q", bx.ID)
		}
		seen[bx.ID] = true
	}
	return nil
}

// Validate checks a single box against its container.
func (bx Box) Validate(c Container) error {
	if err := errors.ValidateBoxID(bx.ID); err != nil {
		return err
	}
	if err := errors.ValidateDimension("box "+bx.ID+" width", bx.Width, c.Width); err != nil {
		return err
	}
	return errors.ValidateDimension("box "+bx.ID+" height", bx.Height, c.Height)
}

// NewID returns a fresh random box identifier.
func NewID() string {
	return uuid.NewString()
}
