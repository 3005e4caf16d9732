package hierarchy

// mergeEntries folds key ordered partitions into one globally ordered
// slice by repeatedly taking the smallest head. With at most
// MaxHierarchyReaders partitions a linear scan per step is cheaper
// than a heap. Equal keys resolve to the partition with the lowest
// index, so the output is deterministic for a fixed reader count.
func mergeEntries(parts [][]Entry) []Entry {
	var total int
	for _, part := range parts {
		total += len(part)
	}

	entries := make([]Entry, 0, total)
	heads := make([]int, len(parts))

	for len(entries) < total {
		minPart := -1
		for i, part := range parts {
			if heads[i] == len(part) {
				continue
			}
			if minPart < 0 || part[heads[i]].OsmID < parts[minPart][heads[minPart]].OsmID {
				minPart = i
			}
		}
		entries = append(entries, parts[minPart][heads[minPart]])
		heads[minPart]++
	}

	return entries
}
