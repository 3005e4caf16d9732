// Package eye records usage telemetry of the map tools. Counters and
// event histories are published as immutable snapshots behind an
// atomic pointer, every mutation copies the current snapshot, persists
// the change and only then publishes and notifies subscribers. A
// mutation that cannot be persisted is dropped, the published state
// never runs ahead of the disk state.
//
// Snapshot reads are safe from any goroutine. Mutations and
// subscription changes must be serialized by the caller.
package eye

import (
	"time"

	"go.uber.org/atomic"

	"github.com/geohier/ghier/internal/constants"
	"github.com/geohier/ghier/internal/dlog"
	"github.com/geohier/ghier/internal/geo"
)

// Subscriber is notified after successfully persisted mutations.
// Notification payloads must be treated as read only.
type Subscriber interface {
	OnTipClicked(tip Tip)
	OnLayerShown(layer Layer)
	OnMapObjectEvent(object MapObject, events MapObjectEvents)
}

// Eye records and publishes usage telemetry.
type Eye struct {
	storage     *Storage
	info        atomic.Pointer[Info]
	subscribers []Subscriber
	now         func() time.Time
}

// Option configures an Eye.
type Option func(*Eye)

// WithClock replaces the time source. Tests use it to control event
// timestamps and expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Eye) {
		e.now = now
	}
}

// New loads the persisted state from dir and returns a ready eye.
// Unreadable or unknown state starts the eye empty and is never
// fatal, only an unusable storage directory is an error. Map object
// events past their expiry period are trimmed and, when anything was
// trimmed, the journal is rewritten compacted.
func New(dir string, options ...Option) (*Eye, error) {
	storage, err := NewStorage(dir)
	if err != nil {
		return nil, err
	}

	eye := &Eye{storage: storage, now: time.Now}
	for _, option := range options {
		option(eye)
	}

	eye.info.Store(eye.load())
	eye.trimExpiredMapObjectEvents()
	return eye, nil
}

// GetInfo returns the current snapshot.
func (e *Eye) GetInfo() *Info {
	return e.info.Load()
}

// Subscribe registers a subscriber for mutation notifications.
func (e *Eye) Subscribe(subscriber Subscriber) {
	e.subscribers = append(e.subscribers, subscriber)
}

// UnsubscribeAll removes all subscribers.
func (e *Eye) UnsubscribeAll() {
	e.subscribers = nil
}

// RegisterTipClick records a reaction to a tip.
func (e *Eye) RegisterTipClick(tipType TipType, event TipEvent) {
	editable := e.GetInfo().Copy()

	var tip *Tip
	for i := range editable.Tips {
		if editable.Tips[i].Type == tipType {
			tip = &editable.Tips[i]
			break
		}
	}
	if tip == nil {
		editable.Tips = append(editable.Tips, Tip{Type: tipType})
		tip = &editable.Tips[len(editable.Tips)-1]
	}
	if tip.EventCounters == nil {
		tip.EventCounters = make(map[TipEvent]uint64)
	}
	tip.EventCounters[event]++
	tip.LastShownTime = e.now()

	clicked := *tip
	if !e.save(editable) {
		return
	}
	for _, subscriber := range e.subscribers {
		subscriber.OnTipClicked(clicked)
	}
}

// RegisterLayerShown records that a map layer was turned on.
func (e *Eye) RegisterLayerShown(layerType LayerType) {
	editable := e.GetInfo().Copy()

	var layer *Layer
	for i := range editable.Layers {
		if editable.Layers[i].Type == layerType {
			layer = &editable.Layers[i]
			break
		}
	}
	if layer == nil {
		editable.Layers = append(editable.Layers, Layer{Type: layerType})
		layer = &editable.Layers[len(editable.Layers)-1]
	}
	layer.UseCount++
	layer.LastTimeUsed = e.now()

	shown := *layer
	if !e.save(editable) {
		return
	}
	for _, subscriber := range e.subscribers {
		subscriber.OnLayerShown(shown)
	}
}

// RegisterMapObjectEvent records an interaction with a map object.
// The event is appended to the journal, the info snapshot file is not
// rewritten.
func (e *Eye) RegisterMapObjectEvent(object MapObject, eventType MapObjectEventType,
	userPos geo.LatLon) {

	editable := e.GetInfo().Copy()

	event := MapObjectEvent{Type: eventType, UserPos: userPos, EventTime: e.now()}
	editable.MapObjects[object] = append(editable.MapObjects[object], event)
	events := append(MapObjectEvents(nil), editable.MapObjects[object]...)

	frame, err := serializeMapObjectEvent(object, event)
	if err == nil {
		err = e.storage.AppendMapObjectEvent(frame)
	}
	if err != nil {
		dlog.Common.Error("Cannot append eye map object event:", err)
		return
	}

	e.info.Store(editable)
	for _, subscriber := range e.subscribers {
		subscriber.OnMapObjectEvent(object, events)
	}
}

// save persists the snapshot and publishes it only on success.
func (e *Eye) save(info *Info) bool {
	data, err := serializeInfo(info)
	if err == nil {
		err = e.storage.SaveInfo(data)
	}
	if err != nil {
		dlog.Common.Error("Cannot save eye info:", err)
		return false
	}
	e.info.Store(info)
	return true
}

// load reads the persisted state. Any unreadable file starts the eye
// empty.
func (e *Eye) load() *Info {
	info := &Info{MapObjects: make(MapObjects)}

	infoData, err := e.storage.LoadInfo()
	if err == nil {
		var mapObjectsData []byte
		mapObjectsData, err = e.storage.LoadMapObjects()

		if err == nil && len(infoData) > 0 {
			err = deserializeInfo(infoData, info)
		}
		if err == nil && len(mapObjectsData) > 0 {
			err = deserializeMapObjects(mapObjectsData, info.MapObjects)
		}
	}
	if err != nil {
		dlog.Common.Error("Cannot load eye files, starting empty:", err)
		return &Info{MapObjects: make(MapObjects)}
	}
	return info
}

// trimExpiredMapObjectEvents drops events past their expiry period
// and compacts the journal when anything was dropped.
func (e *Eye) trimExpiredMapObjectEvents() {
	editable := e.GetInfo().Copy()
	now := e.now()

	changed := false
	for object, events := range editable.MapObjects {
		kept := events[:0]
		for _, event := range events {
			if now.Sub(event.EventTime) >= constants.MapObjectEventsExpirePeriod {
				changed = true
				continue
			}
			kept = append(kept, event)
		}
		if len(kept) == 0 {
			delete(editable.MapObjects, object)
			continue
		}
		editable.MapObjects[object] = kept
	}

	if !changed {
		return
	}

	data, err := serializeMapObjects(editable.MapObjects)
	if err == nil {
		err = e.storage.SaveMapObjects(data)
	}
	if err != nil {
		dlog.Common.Error("Cannot compact eye map object events:", err)
		return
	}
	e.info.Store(editable)
}
