package geo

// Mercator plane bounds. The projection maps the world onto a square,
// so the X and Y ranges are identical.
const (
	MercatorMin float64 = -180
	MercatorMax float64 = 180
)

// Rect is an axis aligned rectangle on the mercator plane.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect returns the rectangle spanning the given corners.
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// FullRect covers the whole mercator plane.
func FullRect() Rect {
	return NewRect(MercatorMin, MercatorMin, MercatorMax, MercatorMax)
}

// IsValid reports whether the rectangle spans a non empty area.
func (r Rect) IsValid() bool {
	return r.MinX < r.MaxX && r.MinY < r.MaxY
}
