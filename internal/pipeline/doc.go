// Package pipeline loads structure files, fans their candidate pairs out to
// a pool of workers running a Pairer, and hands one ordered engine.Batch per
// structure to a visit callback.
//
// The only contract to implement is Pairer (Candidates + ClassifyPair).
// This keeps the pipeline swappable and testable.
package pipeline
