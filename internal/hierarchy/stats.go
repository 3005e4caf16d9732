package hierarchy

import "fmt"

// ParsingStats counts per record outcomes of a dump read. Every non
// empty input line is reflected in exactly one counter.
type ParsingStats struct {
	// NumLoaded is the number of entries loaded into the result.
	NumLoaded uint64
	// NumSentinels is the number of entries filtered for carrying the
	// count sentinel kind.
	NumSentinels uint64
	// BadOsmIDs is the number of lines without a parsable leading id.
	BadOsmIDs uint64
	// BadJSONs is the number of payloads which are not valid JSON.
	BadJSONs uint64
	// BadKinds is the number of payloads with a missing or unknown
	// kind discriminant.
	BadKinds uint64
}

// Add sums other into s. The readers keep worker local stats which are
// folded into the caller's instance after the join.
func (s *ParsingStats) Add(other ParsingStats) {
	s.NumLoaded += other.NumLoaded
	s.NumSentinels += other.NumSentinels
	s.BadOsmIDs += other.BadOsmIDs
	s.BadJSONs += other.BadJSONs
	s.BadKinds += other.BadKinds
}

// Total returns the number of accounted non empty input lines.
func (s *ParsingStats) Total() uint64 {
	return s.NumLoaded + s.NumSentinels + s.BadOsmIDs + s.BadJSONs + s.BadKinds
}

// BadRatio returns the fraction of accounted lines which were
// unusable. Zero for an empty input.
func (s *ParsingStats) BadRatio() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.BadOsmIDs+s.BadJSONs+s.BadKinds) / float64(total)
}

func (s *ParsingStats) String() string {
	return fmt.Sprintf("loaded=%d sentinels=%d badOsmIds=%d badJsons=%d badKinds=%d",
		s.NumLoaded, s.NumSentinels, s.BadOsmIDs, s.BadJSONs, s.BadKinds)
}
