// Package product defines the catalog item and the attribute predicates that
// select it.
package product

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColor is returned when a color name is outside the Color domain.
var ErrUnknownColor = errors.New("unknown color")

// ErrUnknownSize is returned when a size name is outside the Size domain.
var ErrUnknownSize = errors.New("unknown size")

// Color is a product's color.
type Color int

// Supported colors.
const (
	Red Color = iota
	Green
	Blue
)

var colorNames = [...]string{Red: "Red", Green: "Green", Blue: "Blue"}

// Colors returns every color in declaration order.
func Colors() []Color {
	return []Color{Red, Green, Blue}
}

// String returns the color's name, e.g. "Green".
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor returns the color named s, ignoring case.
func ParseColor(s string) (Color, error) {
	for _, c := range Colors() {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownColor, s, names(Colors()))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(colorNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, int(c))
	}
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Size is a product's size.
type Size int

// Supported sizes.
const (
	Small Size = iota
	Medium
	Large
)

var sizeNames = [...]string{Small: "Small", Medium: "Medium", Large: "Large"}

// Sizes returns every size in declaration order.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

// String returns the size's name, e.g. "Large".
func (s Size) String() string {
	if s < 0 || int(s) >= len(sizeNames) {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return sizeNames[s]
}

// ParseSize returns the size named s, ignoring case.
func ParseSize(s string) (Size, error) {
	for _, sz := range Sizes() {
		if strings.EqualFold(s, sz.String()) {
			return sz, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownSize, s, names(Sizes()))
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(sizeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSize, int(s))
	}
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Product is a catalog item. Products are passed by value, so a predicate or
// filter only ever sees a copy.
type Product struct {
	Name  string `toml:"name"`
	Color Color  `toml:"color"`
	Size  Size   `toml:"size"`
}

// New returns a product with the given attributes.
func New(name string, color Color, size Size) Product {
	return Product{Name: name, Color: color, Size: size}
}

func names[E fmt.Stringer](values []E) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v.String())
	}
	return strings.Join(out, ", ")
}
