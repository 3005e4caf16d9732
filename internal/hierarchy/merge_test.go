package hierarchy

import (
	"testing"

	"github.com/geohier/ghier/internal/geo"
)

func TestMergeEntriesOrdersAcrossPartitions(t *testing.T) {
	parts := [][]Entry{
		{{OsmID: 2}, {OsmID: 5}, {OsmID: 9}},
		{{OsmID: 1}, {OsmID: 5}, {OsmID: 6}},
		{{OsmID: 3}},
	}

	entries := mergeEntries(parts)

	expected := []geo.ObjectID{1, 2, 3, 5, 5, 6, 9}
	if len(entries) != len(expected) {
		t.Fatalf("expected %d entries but got %d", len(expected), len(entries))
	}
	for i, id := range expected {
		if entries[i].OsmID != id {
			t.Errorf("expected id %d at position %d but got %d", id, i, entries[i].OsmID)
		}
	}
}

func TestMergeEntriesEqualKeysKeepLowestPartitionFirst(t *testing.T) {
	parts := [][]Entry{
		{{OsmID: 7, Name: "from part 0"}},
		{{OsmID: 7, Name: "from part 1"}},
		{{OsmID: 7, Name: "from part 2"}},
	}

	entries := mergeEntries(parts)

	expected := []string{"from part 0", "from part 1", "from part 2"}
	if len(entries) != len(expected) {
		t.Fatalf("expected %d entries but got %d", len(expected), len(entries))
	}
	for i, name := range expected {
		if entries[i].Name != name {
			t.Errorf("expected %q at position %d but got %q", name, i, entries[i].Name)
		}
	}
}

func TestMergeEntriesEmptyPartitions(t *testing.T) {
	if got := mergeEntries(nil); len(got) != 0 {
		t.Errorf("expected no entries but got %d", len(got))
	}
	if got := mergeEntries([][]Entry{nil, {}, nil}); len(got) != 0 {
		t.Errorf("expected no entries but got %d", len(got))
	}

	entries := mergeEntries([][]Entry{nil, {{OsmID: 4}}, {}})
	if len(entries) != 1 || entries[0].OsmID != 4 {
		t.Errorf("expected the single entry with id 4 but got %v", entries)
	}
}
