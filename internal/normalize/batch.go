package normalize

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report summarizes a normalization run. Dropped counts documents excluded
// for missing required keys; it is the one condition the operator should
// see, since it means data loss.
type Report struct {
	Documents int
	Dropped   int
}

// Normalize runs the full pipeline over one batch: validate, flatten,
// pivot, merge, enforce schema. Malformed documents are excluded and
// counted; every other irregularity (null cluster, unknown category,
// one-sided join key) resolves by defaulting, so there is no error return.
func Normalize(docs []RiskResponse) (*Table, Report) {
	rep := Report{Documents: len(docs)}
	kept := make([]RiskResponse, 0, len(docs))
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			rep.Dropped++
			continue
		}
		kept = append(kept, doc)
	}

	var flat []FlatRow
	for _, doc := range kept {
		flat = append(flat, Flatten(doc)...)
	}
	vectors := PivotExposures(kept)
	return EnforceSchema(Merge(flat, vectors)), rep
}

// DecodeBatch reads a JSON array of response documents, the same shape the
// raw-persistence file holds, so a saved batch can be replayed without
// re-querying the API.
func DecodeBatch(r io.Reader) ([]RiskResponse, error) {
	var docs []RiskResponse
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return docs, nil
}
