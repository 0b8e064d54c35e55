package normalize

// PivotExposures projects each document's variable-length exposures list
// onto the fixed vocabulary, producing one fixed-width vector per document.
// Categories outside the vocabulary are dropped. An address with two
// entries for the same category is undefined input; the last-seen value
// wins (never summed).
func PivotExposures(docs []RiskResponse) []ExposureVector {
	out := make([]ExposureVector, 0, len(docs))
	for _, doc := range docs {
		byCat := make(map[string]float64, len(doc.Exposures))
		for _, e := range doc.Exposures {
			if !KnownCategory(e.Category) {
				continue
			}
			byCat[e.Category] = e.Value
		}
		vec := ExposureVector{
			Address: doc.Address,
			Risk:    doc.Risk,
			Values:  make([]float64, len(Categories)),
		}
		for i, c := range Categories {
			if v, ok := byCat[c]; ok {
				vec.Values[i] = v
			}
		}
		out = append(out, vec)
	}
	return out
}
