// Package engine ties candidate search, pair classification, Leontis-Westhof
// annotation and H-bond listing into per-pair records. It never imports app,
// writers, cli, or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here; pkg/api holds
// the stable wire types.
package engine
