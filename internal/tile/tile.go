// Package tile provides tile grid arithmetic over the mercator plane.
// The world is split into 2^zoom by 2^zoom square tiles per zoom
// level, tile (0, 0) sits at the mercator origin and indices grow
// towards the upper right.
package tile

import (
	"fmt"
	"math"

	"github.com/geohier/ghier/internal/constants"
	"github.com/geohier/ghier/internal/geo"
)

// Key addresses one tile of the grid.
type Key struct {
	X    int
	Y    int
	Zoom int
}

// NewKey returns the key for the given tile coordinates.
func NewKey(x, y, zoom int) Key {
	return Key{X: x, Y: y, Zoom: zoom}
}

func (k Key) String() string {
	return fmt.Sprintf("[x = %d, y = %d, zoom = %d]", k.X, k.Y, k.Zoom)
}

// Coverage is the half open tile index span covering a rectangle,
// MinTileX <= x < MaxTileX and MinTileY <= y < MaxTileY.
type Coverage struct {
	MinTileX int
	MaxTileX int
	MinTileY int
	MaxTileY int
}

// CalcCoverage returns the tile span covering rect at targetZoom.
// When processTile is not nil it is invoked for every tile of the
// span in row major order.
func CalcCoverage(rect geo.Rect, targetZoom int, processTile func(tileX, tileY int)) Coverage {
	tileSize := (geo.MercatorMax - geo.MercatorMin) / float64(int(1)<<targetZoom)

	var result Coverage
	result.MinTileX = int(math.Floor(rect.MinX / tileSize))
	result.MaxTileX = int(math.Ceil(rect.MaxX / tileSize))
	result.MinTileY = int(math.Floor(rect.MinY / tileSize))
	result.MaxTileY = int(math.Ceil(rect.MaxY / tileSize))

	if processTile != nil {
		for tileY := result.MinTileY; tileY < result.MaxTileY; tileY++ {
			for tileX := result.MinTileX; tileX < result.MaxTileX; tileX++ {
				processTile(tileX, tileY)
			}
		}
	}

	return result
}

// IsNeighbours reports whether two distinct tiles touch each other,
// diagonals included.
func IsNeighbours(a, b Key) bool {
	return !(a.X == b.X && a.Y == b.Y) &&
		abs(a.X-b.X) < 2 && abs(a.Y-b.Y) < 2
}

// ClipZoomByMaxDataZoom bounds a requested zoom level to the deepest
// level map data exists for.
func ClipZoomByMaxDataZoom(zoom int) int {
	if zoom <= constants.MaxDataZoom {
		return zoom
	}
	return constants.MaxDataZoom
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
