package normalize

// Flatten turns one response document into one row per identification
// entry. A document with no identifications still yields exactly one row
// with nil identification fields, so no screened address is silently
// dropped from the output.
func Flatten(doc RiskResponse) []FlatRow {
	n := len(doc.AddressIdentifications)
	if n == 0 {
		n = 1 // placeholder identification
	}
	rows := make([]FlatRow, n)
	for i := range rows {
		rows[i] = FlatRow{Address: doc.Address, Risk: doc.Risk}
		if doc.Cluster != nil {
			rows[i].ClusterName = ptr(doc.Cluster.Name)
			rows[i].ClusterCategory = ptr(doc.Cluster.Category)
		}
		if i < len(doc.AddressIdentifications) {
			id := doc.AddressIdentifications[i]
			rows[i].IdentificationName = ptr(id.Name)
			rows[i].IdentificationCategory = ptr(id.Category)
			rows[i].IdentificationDescription = ptr(id.Description)
		}
	}
	return rows
}

func ptr(s string) *string { return &s }
