package output

// Table formats.
const (
	FormatCSV = "csv"
	FormatTSV = "tsv"
)

// Column headers of the two per-pair tables. Downstream spreadsheets key on
// these names; keep them byte-for-byte.
var (
	RawHeader   = []string{"Left bases", "Sequence"}
	CountHeader = []string{"Left bases", "Variant", "Right bases", "Mutation information", "Count total"}
)
