// core/engine/record.go
package engine

import (
	"rnapairs-core/classify"
	"rnapairs-core/geom"
	"rnapairs-core/primitives"
	"rnapairs-core/residue"
)

// Kind tells what a record describes.
type Kind string

const (
	KindPair    Kind = "pair"
	KindStacked Kind = "stacked"
	KindNetwork Kind = "network"
)

// ResidueRef identifies one side of a record.
type ResidueRef struct {
	Index int    `json:"index"`
	Chain string `json:"chain"`
	Seq   int    `json:"seq"`
	Ins   string `json:"ins,omitempty"`
	Base  string `json:"base"`
	Syn   bool   `json:"syn,omitempty"`
}

func refOf(r *residue.Residue, syn bool) ResidueRef {
	return ResidueRef{
		Index: r.Index,
		Chain: r.Chain,
		Seq:   r.SeqNum,
		Ins:   r.InsCode,
		Base:  string(r.Base),
		Syn:   syn,
	}
}

// PairRecord is one reported interaction between residues I and J (I < J).
type PairRecord struct {
	Source string     `json:"source,omitempty"`
	I      ResidueRef `json:"i"`
	J      ResidueRef `json:"j"`
	Kind   Kind       `json:"kind"`
	Status int        `json:"status"`
	Stage  string     `json:"stage"`

	// LW annotation, pairs only
	Type    string `json:"type,omitempty"`
	Edges   string `json:"edges,omitempty"`
	Orient  string `json:"orient,omitempty"`
	Retried bool   `json:"retried,omitempty"`

	Descriptors classify.Descriptors `json:"descriptors"`
	Step        geom.Step            `json:"step"`
	HBonds      []primitives.HBond   `json:"hbonds,omitempty"`
	Stacked     int                  `json:"stacked,omitempty"`
	Syn         int                  `json:"syn"`
	Best        bool                 `json:"best,omitempty"`

	// Warning is set when the H-bond list was truncated; Err wraps
	// hbond.ErrTooManyHBonds in that case.
	Warning string `json:"warning,omitempty"`
	Err     error  `json:"-"`
}

// Canonical reports a Watson-Crick pair in canonical geometry.
func (r PairRecord) Canonical() bool { return r.Status == classify.Canonical }

// Code is the two-letter base code, e.g. "G-C".
func (r PairRecord) Code() string { return r.I.Base + "-" + r.J.Base }
