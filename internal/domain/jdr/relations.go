package jdr

import "slices"

// Associated products are stored as names on both sides. Renaming a record
// leaves inbound references pointing at the old name.

// LinkAssociated appends created.Name to every existing record named in
// created.AssociatedProducts. Names that match nothing are left dangling on
// created. Records are updated in place and the slice is returned.
func LinkAssociated(created JDR, records []JDR) []JDR {
	for _, peerName := range created.AssociatedProducts {
		for i := range records {
			if records[i].ID == created.ID || records[i].Name != peerName {
				continue
			}
			records[i].AssociatedProducts = addName(records[i].AssociatedProducts, created.Name)
		}
	}
	return records
}

// UnlinkAssociated removes the record with target.ID and filters target.Name
// out of every remaining record's AssociatedProducts. When another record
// still carries the same name its inbound links are kept.
func UnlinkAssociated(target JDR, records []JDR) []JDR {
	out := make([]JDR, 0, len(records))
	for _, r := range records {
		if r.ID != target.ID {
			out = append(out, r)
		}
	}

	// Links are by name, so they still point at the surviving namesake.
	for _, r := range out {
		if r.Name == target.Name {
			return out
		}
	}

	for i := range out {
		if slices.Contains(out[i].AssociatedProducts, target.Name) {
			out[i].AssociatedProducts = removeName(out[i].AssociatedProducts, target.Name)
		}
	}
	return out
}

// Finding is one inconsistency reported by Audit.
type Finding struct {
	RecordID   int    `json:"recordId"`
	RecordName string `json:"recordName"`
	Reference  string `json:"reference"`
	Kind       string `json:"kind"`
}

const (
	FindingDangling = "dangling"
	FindingOneSided = "one_sided"
)

// Audit reports references that match no record and links the peer does
// not reciprocate. It never mutates records.
func Audit(records []JDR) []Finding {
	byName := make(map[string][]int, len(records))
	for i, r := range records {
		byName[r.Name] = append(byName[r.Name], i)
	}

	var findings []Finding
	for _, r := range records {
		for _, ref := range r.AssociatedProducts {
			peers, ok := byName[ref]
			if !ok {
				findings = append(findings, Finding{RecordID: r.ID, RecordName: r.Name, Reference: ref, Kind: FindingDangling})
				continue
			}
			reciprocated := false
			for _, p := range peers {
				if slices.Contains(records[p].AssociatedProducts, r.Name) {
					reciprocated = true
					break
				}
			}
			if !reciprocated {
				findings = append(findings, Finding{RecordID: r.ID, RecordName: r.Name, Reference: ref, Kind: FindingOneSided})
			}
		}
	}
	return findings
}

func addName(names []string, name string) []string {
	if slices.Contains(names, name) {
		return names
	}
	return append(names, name)
}

func removeName(names []string, name string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

func uniqueNames(names []string) []string {
	if names == nil {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = addName(out, n)
	}
	return out
}
