// pkg/api/pairs_v1.go
package api

// SchemaVersion is the value of PairsV1.SchemaVersion.
const SchemaVersion = "1"

// PairsV1 is the stable JSON document for one run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PairsV1 struct {
	SchemaVersion string        `json:"schema_version"`
	RunID         string        `json:"run_id"`
	Generator     string        `json:"generator,omitempty"`
	Structures    []StructureV1 `json:"structures"`
	Stats         StatsV1       `json:"stats"`
}

// StructureV1 is the analysis of one input file.
type StructureV1 struct {
	Source   string   `json:"source"`
	Core     CoreV1   `json:"core"`
	Warnings []string `json:"warnings,omitempty"`
}

// CoreV1 holds the interaction records and their summary.
type CoreV1 struct {
	BasePairs []BasePairV1 `json:"base_pairs"`
	Stats     StatsV1      `json:"stats"`
}

// ResidueV1 identifies one residue.
type ResidueV1 struct {
	Index int    `json:"index"`
	Chain string `json:"chain"`
	Seq   int    `json:"seq"`
	Ins   string `json:"ins,omitempty"`
	Base  string `json:"base"`
	Syn   bool   `json:"syn,omitempty"`
}

// StepV1 holds the six step parameters (Å, degrees).
type StepV1 struct {
	Shift float64 `json:"shift"`
	Slide float64 `json:"slide"`
	Rise  float64 `json:"rise"`
	Tilt  float64 `json:"tilt"`
	Roll  float64 `json:"roll"`
	Twist float64 `json:"twist"`
}

// HBondV1 is one atom contact.
type HBondV1 struct {
	AtomI string  `json:"atom_i"`
	AtomJ string  `json:"atom_j"`
	Dist  float64 `json:"dist"`
}

// BasePairV1 is one pair, stack or network record.
type BasePairV1 struct {
	Source     string    `json:"source,omitempty"` // set on JSONL lines
	I          ResidueV1 `json:"i"`
	J          ResidueV1 `json:"j"`
	Kind       string    `json:"kind"` // "pair" | "stacked" | "network"
	Status     int       `json:"status"`
	Canonical  bool      `json:"canonical"`
	LW         string    `json:"lw,omitempty"`
	Edges      string    `json:"edges,omitempty"`
	Orient     string    `json:"orient,omitempty"`
	Best       bool      `json:"best,omitempty"`
	Syn        int       `json:"syn,omitempty"`
	Score      float64   `json:"score"`
	Dorg       float64   `json:"dorg"`
	Dv         float64   `json:"dv"`
	PlaneAngle float64   `json:"plane_angle"`
	DNN        float64   `json:"dNN"`
	Step       *StepV1   `json:"step,omitempty"`
	HBonds     []HBondV1 `json:"hbonds,omitempty"`
	Stacked    int       `json:"stacked,omitempty"`
	Warning    string    `json:"warning,omitempty"`
}

// StatsV1 summarises records.
type StatsV1 struct {
	Bases     int            `json:"bases"`
	Pairs     int            `json:"pairs"`
	Canonical int            `json:"canonical"`
	Stacked   int            `json:"stacked"`
	Network   int            `json:"network,omitempty"`
	Truncated int            `json:"truncated,omitempty"`
	Types     map[string]int `json:"types,omitempty"`
}
