package product

// ColorIs is satisfied by products of one color.
type ColorIs struct {
	Color Color
}

// IsSatisfied reports whether item has the wanted color.
func (p ColorIs) IsSatisfied(item Product) bool {
	return item.Color == p.Color
}

// String describes the predicate by its color.
func (p ColorIs) String() string {
	return p.Color.String()
}

// SizeIs is satisfied by products of one size.
type SizeIs struct {
	Size Size
}

// IsSatisfied reports whether item has the wanted size.
func (p SizeIs) IsSatisfied(item Product) bool {
	return item.Size == p.Size
}

// String describes the predicate by its size.
func (p SizeIs) String() string {
	return p.Size.String()
}
