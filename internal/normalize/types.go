package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Package normalize converts per-address risk API responses into a flat,
// fixed-schema table for spreadsheet consumption. All stages are pure:
// documents in, rows out, no I/O.

// Risk is the opaque risk label attached to an address. The API returns it
// either as a string ("Severe") or as a bare number; both decode to the
// same string form and pass through to the output unmodified.
type Risk string

func (r *Risk) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*r = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = Risk(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("risk: unsupported value %s", string(b))
	}
	*r = Risk(n.String())
	return nil
}

// Cluster is the named, categorized grouping the scoring service attributes
// an address to (e.g. a known exchange). Absent for many addresses.
type Cluster struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Exposure is a measured degree of transactional proximity to one risk
// category.
type Exposure struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// AddressIdentification is a human-readable label the scoring service
// attaches to an address; an address may carry zero, one, or many.
type AddressIdentification struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// RiskResponse is one scored document, as returned per address by the risk
// API. Slice fields stay nil when the key is missing from the JSON, which
// is how Validate distinguishes a malformed document from an empty list
// ("[]" decodes to a non-nil empty slice).
type RiskResponse struct {
	Address                string                  `json:"address"`
	Risk                   Risk                    `json:"risk"`
	Cluster                *Cluster                `json:"cluster"`
	Exposures              []Exposure              `json:"exposures"`
	AddressIdentifications []AddressIdentification `json:"addressIdentifications"`
}

// Validate reports whether the document carries every required key.
// Address and the two list keys are load-bearing: address is the join key
// and the lists drive row cardinality, so a document missing any of them is
// excluded from the batch rather than silently defaulted.
func (r RiskResponse) Validate() error {
	if r.Address == "" {
		return fmt.Errorf("document missing address")
	}
	if r.Exposures == nil {
		return fmt.Errorf("document %s missing exposures", r.Address)
	}
	if r.AddressIdentifications == nil {
		return fmt.Errorf("document %s missing addressIdentifications", r.Address)
	}
	return nil
}

// FlatRow is one (address, identification) pair with the nested cluster
// record flattened alongside. Pointer fields are nil where the source
// record was absent (null cluster, placeholder identification).
type FlatRow struct {
	Address                   string
	Risk                      Risk
	ClusterName               *string
	ClusterCategory           *string
	IdentificationName        *string
	IdentificationCategory    *string
	IdentificationDescription *string
}

// ExposureVector is one address's exposures projected onto the fixed
// vocabulary: Values[i] corresponds to Categories[i], zero when the address
// has no entry for that category.
type ExposureVector struct {
	Address string
	Risk    Risk
	Values  []float64
}

// OutputRow is the outer join of a FlatRow with its ExposureVector. A nil
// Exposures slice means the vector side was missing; the schema enforcer
// renders it as all zeros.
type OutputRow struct {
	FlatRow
	Exposures []float64
}
