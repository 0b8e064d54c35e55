package normalize

import "strconv"

var metaColumns = []string{
	"address",
	"risk",
	"cluster.name",
	"cluster.category",
	"identification.name",
	"identification.category",
	"identification.description",
}

// Columns returns the contracted output header: seven metadata columns
// followed by the vocabulary categories, in fixed order. The result is a
// fresh slice; callers may mutate it.
func Columns() []string {
	out := make([]string, 0, len(metaColumns)+len(Categories))
	out = append(out, metaColumns...)
	out = append(out, Categories...)
	return out
}

// Table is the final row set with its contracted header. Every row has
// exactly len(Header()) cells.
type Table struct {
	header []string
	rows   [][]string
}

func (t *Table) Header() []string { return t.header }
func (t *Table) Rows() [][]string { return t.rows }
func (t *Table) Len() int         { return len(t.rows) }

// EnforceSchema projects merged rows onto the contracted column set. Nil
// fields render as empty cells and a missing exposure vector as zeros, so
// the header is a constant of the contract, never of the batch contents.
func EnforceSchema(rows []OutputRow) *Table {
	header := Columns()
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := make([]string, 0, len(header))
		row = append(row,
			r.Address,
			string(r.Risk),
			deref(r.ClusterName),
			deref(r.ClusterCategory),
			deref(r.IdentificationName),
			deref(r.IdentificationCategory),
			deref(r.IdentificationDescription),
		)
		for i := range Categories {
			v := 0.0
			if i < len(r.Exposures) {
				v = r.Exposures[i]
			}
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		cells = append(cells, row)
	}
	return &Table{header: header, rows: cells}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
