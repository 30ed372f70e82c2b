package carpet

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
)

// Dimension names accepted by Item.Set.
const (
	Length = "length"
	Width  = "width"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Item is one carpet. Length and width are kept exactly as typed so that a
// half-entered value ("25", "250.") survives a round trip to the user.
type Item struct {
	id     kernel.UUID
	length string
	width  string
}

// NewItem creates an empty carpet with a fresh identity.
func NewItem() *Item {
	return &Item{id: kernel.NewUUID()}
}

// RestoreItem rebuilds an item with a known identity.
func RestoreItem(id kernel.UUID, length, width string) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Item{id: id, length: length, width: width}, nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Length() string {
	return i.length
}

func (i *Item) Width() string {
	return i.width
}

// Set replaces the raw text of one dimension.
func (i *Item) Set(dimension, value string) error {
	switch dimension {
	case Length:
		i.length = value
	case Width:
		i.width = value
	default:
		return errs.NewValueIsInvalidError("dimension " + dimension)
	}
	return nil
}

// LengthCm returns the parsed length; see ParseDimension.
func (i *Item) LengthCm() float64 {
	return ParseDimension(i.length)
}

// WidthCm returns the parsed width; see ParseDimension.
func (i *Item) WidthCm() float64 {
	return ParseDimension(i.width)
}

// Area returns the surface in square metres. Absurdly large dimensions
// saturate at math.MaxFloat64 instead of overflowing.
func (i *Item) Area() float64 {
	return bounded((i.LengthCm() / 100) * (i.WidthCm() / 100))
}

// IsActive reports whether both dimensions are filled in with positive numbers.
func (i *Item) IsActive() bool {
	return i.LengthCm() > 0 && i.WidthCm() > 0
}

func (i *Item) clone() *Item {
	c := *i
	return &c
}

// ParseDimension reads the leading decimal number of s, ignoring surrounding
// whitespace and any trailing text ("250 cm" is 250). Empty, non-numeric and
// negative input yields 0; it never fails.
func ParseDimension(s string) float64 {
	match := leadingNumber.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) {
		return 0
	}
	return v
}
