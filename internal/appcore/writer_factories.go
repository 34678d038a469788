package appcore

import (
	"io"

	"rnapairs-core/engine"

	"rnapairs/internal/writers"
)

// PairWriterFactory starts the batch writer for one output format.
type PairWriterFactory struct {
	Options writers.Options
}

func NewPairWriterFactory(format, sortBy string, header, pretty bool, runID, generator string) PairWriterFactory {
	return PairWriterFactory{Options: writers.Options{
		Format:    format,
		SortBy:    sortBy,
		Header:    header,
		Pretty:    pretty,
		RunID:     runID,
		Generator: generator,
	}}
}

func (w PairWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Batch, <-chan error) {
	return writers.StartPairWriter(out, w.Options, bufSize)
}
