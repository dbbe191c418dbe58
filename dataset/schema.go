// SPDX-License-Identifier: MIT

package dataset

// Kind is the logical type of a column.
type Kind uint8

const (
	// KindFloat columns hold float64 values.
	KindFloat Kind = iota
	// KindInt columns hold integral values (stored as float64, rendered as int).
	KindInt
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Column describes one field of the table.
type Column struct {
	Name string
	Kind Kind
}

// Column indices in export order.
const (
	ColSampleID = iota
	ColREDBefore
	ColNIRBefore
	ColREDAfter
	ColNIRAfter
	ColNDVIBefore
	ColNDVIAfter
	ColNDVIDiff
	ColLabel

	// NumColumns is the schema width.
	NumColumns
)

// columns is the single source of truth for column order and kinds.
var columns = [NumColumns]Column{
	ColSampleID:   {Name: "sample_id", Kind: KindInt},
	ColREDBefore:  {Name: "RED_before", Kind: KindFloat},
	ColNIRBefore:  {Name: "NIR_before", Kind: KindFloat},
	ColREDAfter:   {Name: "RED_after", Kind: KindFloat},
	ColNIRAfter:   {Name: "NIR_after", Kind: KindFloat},
	ColNDVIBefore: {Name: "NDVI_before", Kind: KindFloat},
	ColNDVIAfter:  {Name: "NDVI_after", Kind: KindFloat},
	ColNDVIDiff:   {Name: "NDVI_diff", Kind: KindFloat},
	ColLabel:      {Name: "label_deforested", Kind: KindInt},
}

// Columns returns a copy of the schema in export order.
func Columns() []Column {
	out := make([]Column, NumColumns)
	copy(out, columns[:])
	return out
}

// Header returns the column names in export order.
func Header() []string {
	out := make([]string, NumColumns)
	for i, c := range columns {
		out[i] = c.Name
	}
	return out
}

// MatchHeader reports whether got is exactly the schema header.
func MatchHeader(got []string) bool {
	if len(got) != NumColumns {
		return false
	}
	for i, c := range columns {
		if got[i] != c.Name {
			return false
		}
	}
	return true
}
