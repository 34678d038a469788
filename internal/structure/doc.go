// Package structure loads nucleic-acid models from PDB files into the
// residue arena the pair engine works on. It owns every file-format and
// naming concern; rnapairs-core never sees raw records.
package structure
