package hierarchy

import (
	"encoding/json"

	"github.com/geohier/ghier/internal/geo"
)

// Kind discriminates the level of a hierarchy entry.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindCountry
	KindRegion
	KindSubregion
	KindLocality
	KindSuburb
	KindSublocality
	KindStreet
	KindBuilding
	KindPlace
	// KindCount is the sentinel kind written by dump producers for
	// bookkeeping records. Such records are filtered on read and are
	// never an error.
	KindCount
)

var kindNames = map[string]Kind{
	"country":     KindCountry,
	"region":      KindRegion,
	"subregion":   KindSubregion,
	"locality":    KindLocality,
	"suburb":      KindSuburb,
	"sublocality": KindSublocality,
	"street":      KindStreet,
	"building":    KindBuilding,
	"place":       KindPlace,
	"count":       KindCount,
}

var kindStrings = [...]string{
	KindUnknown:     "unknown",
	KindCountry:     "country",
	KindRegion:      "region",
	KindSubregion:   "subregion",
	KindLocality:    "locality",
	KindSuburb:      "suburb",
	KindSublocality: "sublocality",
	KindStreet:      "street",
	KindBuilding:    "building",
	KindPlace:       "place",
	KindCount:       "count",
}

// ParseKind maps the kind discriminant of a dump payload.
func ParseKind(name string) (Kind, bool) {
	kind, ok := kindNames[name]
	return kind, ok
}

func (k Kind) String() string {
	if int(k) < len(kindStrings) {
		return kindStrings[k]
	}
	return "unknown"
}

// Entry is one object of the geocoder hierarchy.
type Entry struct {
	OsmID   geo.ObjectID
	Kind    Kind
	Name    string
	Rank    uint8
	Address map[Kind]string
}

// entryPayload mirrors the JSON payload of a dump line.
type entryPayload struct {
	Kind    string            `json:"kind"`
	Name    string            `json:"name,omitempty"`
	Rank    uint8             `json:"rank,omitempty"`
	Address map[string]string `json:"address,omitempty"`
}

// DecodeFunc turns the JSON payload of one dump line into an entry.
// Implementations record decode failures in stats, report them via the
// bool result and must never panic. The returned entry is only valid
// when the bool result is true.
type DecodeFunc func(payload []byte, stats *ParsingStats) (Entry, bool)

// DecodeEntry is the DecodeFunc for the standard payload schema.
// Unknown address levels are ignored, they never fail the record.
func DecodeEntry(payload []byte, stats *ParsingStats) (Entry, bool) {
	var raw entryPayload
	if err := json.Unmarshal(payload, &raw); err != nil {
		stats.BadJSONs++
		return Entry{}, false
	}

	kind, ok := ParseKind(raw.Kind)
	if !ok {
		stats.BadKinds++
		return Entry{}, false
	}

	entry := Entry{Kind: kind, Name: raw.Name, Rank: raw.Rank}
	for level, name := range raw.Address {
		levelKind, ok := ParseKind(level)
		if !ok || levelKind == KindCount {
			continue
		}
		if entry.Address == nil {
			entry.Address = make(map[Kind]string, len(raw.Address))
		}
		entry.Address[levelKind] = name
	}

	return entry, true
}

// PayloadJSON renders the entry back into the dump payload schema.
func (e *Entry) PayloadJSON() ([]byte, error) {
	raw := entryPayload{Kind: e.Kind.String(), Name: e.Name, Rank: e.Rank}
	if len(e.Address) > 0 {
		raw.Address = make(map[string]string, len(e.Address))
		for levelKind, name := range e.Address {
			raw.Address[levelKind.String()] = name
		}
	}
	return json.Marshal(raw)
}
