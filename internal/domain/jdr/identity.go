package jdr

// NextID returns max(existing ids, default 0) + 1. Ids are never reused
// while the highest id is still present.
func NextID(records []JDR) int {
	last := 0
	for _, r := range records {
		if r.ID > last {
			last = r.ID
		}
	}
	return last + 1
}
