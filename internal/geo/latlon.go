package geo

import "fmt"

// LatLon is a position in degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (ll LatLon) String() string {
	return fmt.Sprintf("(%f, %f)", ll.Lat, ll.Lon)
}
