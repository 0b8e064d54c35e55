package normalize

import "testing"

func TestMergeAttachesVectors(t *testing.T) {
	flat := []FlatRow{
		{Address: "a1", Risk: "Low"},
		{Address: "a2", Risk: "Severe", IdentificationName: ptr("id")},
	}
	vectors := []ExposureVector{
		{Address: "a1", Risk: "Low", Values: unitVector("exchange", 0.5)},
		{Address: "a2", Risk: "Severe", Values: unitVector("scam", 2)},
	}
	out := Merge(flat, vectors)
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].Exposures[categoryIndex["exchange"]] != 0.5 {
		t.Fatalf("a1 vector not attached: %+v", out[0].Exposures)
	}
	if out[1].Exposures[categoryIndex["scam"]] != 2 {
		t.Fatalf("a2 vector not attached: %+v", out[1].Exposures)
	}
}

func TestMergeFlatOnlyKeyKeepsRow(t *testing.T) {
	flat := []FlatRow{{Address: "lonely", Risk: "1"}}
	out := Merge(flat, nil)
	if len(out) != 1 {
		t.Fatalf("flat-only row dropped")
	}
	if out[0].Exposures != nil {
		t.Fatalf("missing vector side must stay nil for the enforcer to default: %+v", out[0].Exposures)
	}
}

func TestMergeVectorOnlyKeyKeepsRow(t *testing.T) {
	vectors := []ExposureVector{{Address: "orphan", Risk: "2", Values: unitVector("fee", 1)}}
	out := Merge(nil, vectors)
	if len(out) != 1 {
		t.Fatalf("vector-only row dropped")
	}
	r := out[0]
	if r.Address != "orphan" || r.Risk != "2" {
		t.Fatalf("key fields not carried from vector side: %+v", r)
	}
	if r.IdentificationName != nil || r.ClusterName != nil {
		t.Fatalf("missing flat side must yield nil fields: %+v", r)
	}
	if r.Exposures[categoryIndex["fee"]] != 1 {
		t.Fatalf("vector values lost: %+v", r.Exposures)
	}
}

func TestMergeRiskIsPartOfKey(t *testing.T) {
	// Same address, different risk: a stale vector must not merge into the
	// fresh flat row.
	flat := []FlatRow{{Address: "a1", Risk: "Severe"}}
	vectors := []ExposureVector{{Address: "a1", Risk: "Low", Values: unitVector("atm", 4)}}
	out := Merge(flat, vectors)
	if len(out) != 2 {
		t.Fatalf("expected 2 rows (flat-only + vector-only), got %d", len(out))
	}
	if out[0].Exposures != nil {
		t.Fatalf("stale vector merged across risk values")
	}
	if out[1].Risk != "Low" || out[1].Exposures[categoryIndex["atm"]] != 4 {
		t.Fatalf("stale vector row malformed: %+v", out[1])
	}
}

func TestMergeFansOutOverIdentifications(t *testing.T) {
	flat := []FlatRow{
		{Address: "a1", Risk: "Low", IdentificationName: ptr("one")},
		{Address: "a1", Risk: "Low", IdentificationName: ptr("two")},
	}
	vectors := []ExposureVector{{Address: "a1", Risk: "Low", Values: unitVector("ico", 9)}}
	out := Merge(flat, vectors)
	if len(out) != 2 {
		t.Fatalf("expected the vector to replicate across both rows, got %d", len(out))
	}
	for i := range out {
		if out[i].Exposures[categoryIndex["ico"]] != 9 {
			t.Fatalf("row %d missing vector values", i)
		}
	}
}

func unitVector(category string, value float64) []float64 {
	v := make([]float64, len(Categories))
	v[categoryIndex[category]] = value
	return v
}
