package eye

import (
	"time"

	"github.com/geohier/ghier/internal/geo"
)

// TipType identifies a UI tip.
type TipType uint8

const (
	TipBookmarks TipType = iota
	TipHotels
	TipDiscovery
	TipPublicTransport
)

// TipEvent is a user reaction to a tip.
type TipEvent uint8

const (
	TipActionClicked TipEvent = iota
	TipGotitClicked
)

// Tip is the recorded interaction state of one UI tip.
type Tip struct {
	Type          TipType             `json:"type"`
	EventCounters map[TipEvent]uint64 `json:"event_counters"`
	LastShownTime time.Time           `json:"last_shown_time"`
}

// LayerType identifies a map layer.
type LayerType uint8

const (
	LayerTraffic LayerType = iota
	LayerPublicTransport
	LayerIsolines
)

// Layer is the recorded usage state of one map layer.
type Layer struct {
	Type         LayerType `json:"type"`
	UseCount     uint64    `json:"use_count"`
	LastTimeUsed time.Time `json:"last_time_used"`
}

// MapObject identifies an interacted map object by its strongest
// classification and position.
type MapObject struct {
	BestType string     `json:"best_type"`
	Pos      geo.LatLon `json:"pos"`
}

// MapObjectEventType identifies an interaction with a map object.
type MapObjectEventType uint8

const (
	MapObjectEventOpen MapObjectEventType = iota
	MapObjectEventAddToBookmark
	MapObjectEventRouteToCreated
)

// MapObjectEvent is one recorded interaction with a map object.
type MapObjectEvent struct {
	Type      MapObjectEventType `json:"type"`
	UserPos   geo.LatLon         `json:"user_pos"`
	EventTime time.Time          `json:"event_time"`
}

// MapObjectEvents is the event history of one map object.
type MapObjectEvents []MapObjectEvent

// MapObjects maps objects to their recorded events.
type MapObjects map[MapObject]MapObjectEvents

// Info is an immutable snapshot of everything the eye has recorded.
// Readers share snapshots, mutations work on a copy and publish it as
// the new snapshot. Consumers must not modify a snapshot.
type Info struct {
	Tips       []Tip
	Layers     []Layer
	MapObjects MapObjects
}

// Copy returns a deep copy suitable for mutation.
func (i *Info) Copy() *Info {
	dup := &Info{
		Tips:       make([]Tip, len(i.Tips)),
		Layers:     append([]Layer(nil), i.Layers...),
		MapObjects: make(MapObjects, len(i.MapObjects)),
	}
	for idx, tip := range i.Tips {
		dup.Tips[idx] = tip
		if tip.EventCounters != nil {
			counters := make(map[TipEvent]uint64, len(tip.EventCounters))
			for event, count := range tip.EventCounters {
				counters[event] = count
			}
			dup.Tips[idx].EventCounters = counters
		}
	}
	for object, events := range i.MapObjects {
		dup.MapObjects[object] = append(MapObjectEvents(nil), events...)
	}
	return dup
}
