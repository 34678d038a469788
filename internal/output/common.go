package output

// Output formats.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"

	// FormatPretty is text with hydrogen bond drawings; selected by
	// --pretty rather than --output.
	FormatPretty = "pretty"
)

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source\ti\tj\tchain_i\tseq_i\tbase_i\tchain_j\tseq_j\tbase_j\tkind\tstatus\tlw\tbest\tsyn\tscore\tdorg\tdv\tplane_angle\tdNN\tshift\tslide\trise\ttilt\troll\ttwist\thbonds"
