package normalize

type mergeKey struct {
	address string
	risk    Risk
}

// Merge outer-joins flattened identification rows with exposure vectors.
// The key is (address, risk): risk duplicates the address key, but a stale
// vector from a previous call then lands in its own row instead of being
// silently merged. A key present on only one side still produces a row,
// with the missing side's fields defaulted; that tolerates replayed or
// partially failed batches where one stage saw a document the other did
// not.
func Merge(flat []FlatRow, vectors []ExposureVector) []OutputRow {
	vecByKey := make(map[mergeKey]ExposureVector, len(vectors))
	vecOrder := make([]mergeKey, 0, len(vectors))
	for _, v := range vectors {
		k := mergeKey{address: v.Address, risk: v.Risk}
		if _, seen := vecByKey[k]; !seen {
			vecOrder = append(vecOrder, k)
		}
		vecByKey[k] = v
	}

	matched := make(map[mergeKey]bool, len(vectors))
	out := make([]OutputRow, 0, len(flat))
	for _, fr := range flat {
		k := mergeKey{address: fr.Address, risk: fr.Risk}
		row := OutputRow{FlatRow: fr}
		if v, ok := vecByKey[k]; ok {
			row.Exposures = v.Values
			matched[k] = true
		}
		out = append(out, row)
	}
	// Vector-only keys: identification and cluster fields stay nil.
	for _, k := range vecOrder {
		if matched[k] {
			continue
		}
		v := vecByKey[k]
		out = append(out, OutputRow{
			FlatRow:   FlatRow{Address: v.Address, Risk: v.Risk},
			Exposures: v.Values,
		})
	}
	return out
}
