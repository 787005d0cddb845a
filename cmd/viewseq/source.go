package main

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"

	"github.com/inoxlang/viewseq/internal/config"
	"github.com/inoxlang/viewseq/internal/seqs"
)

var (
	SOURCE_DESCRIPTIONS = [][2]string{
		{config.SLICE_SOURCE, "slice of integers: random access, writable, contiguous"},
		{config.LINKED_SOURCE, "doubly linked list of integers: bidirectional, writable, sized"},
		{config.TREE_SOURCE, "B-tree of integers (sorted, deduplicated): random access by rank, read-only"},
		{config.BITS_SOURCE, "bit set, the elements are the indexes of the set bits: forward only, sized"},
		{config.VECTOR_SOURCE, "dense vector of floats: random access, writable, contiguous"},
	}
)

// runSource builds the sequence of the given type from the numbers and runs the pipeline over it.
func runSource(source string, numbers []float64, stages []stage, readonly bool, logger zerolog.Logger) (report, error) {
	logger = logger.With().Str("source", source).Logger()

	var (
		rep report
		err error
	)

	switch source {
	case config.SLICE_SOURCE:
		ints, convErr := toIntegers[int](numbers)
		if convErr != nil {
			return report{}, convErr
		}
		s := seqs.NewSlice(ints...)
		rep, err = runPipeline(&s, stages, readonly, logger)
	case config.LINKED_SOURCE:
		ints, convErr := toIntegers[int](numbers)
		if convErr != nil {
			return report{}, convErr
		}
		l := seqs.NewLinked(ints...)
		rep, err = runPipeline(&l, stages, readonly, logger)
	case config.TREE_SOURCE:
		ints, convErr := toIntegers[int](numbers)
		if convErr != nil {
			return report{}, convErr
		}
		t := seqs.NewTree(ints...)
		rep, err = runPipeline(&t, stages, readonly, logger)
	case config.BITS_SOURCE:
		indexes, convErr := toIntegers[uint](numbers)
		if convErr != nil {
			return report{}, convErr
		}
		b := seqs.NewBits(indexes...)
		rep, err = runPipeline(&b, stages, readonly, logger)
	case config.VECTOR_SOURCE:
		v := seqs.NewVector(numbers...)
		rep, err = runPipeline(&v, stages, readonly, logger)
	default:
		return report{}, fmt.Errorf("%w: %q", config.ErrUnknownSource, source)
	}

	if err != nil {
		return report{}, err
	}
	rep.Source = source
	return rep, nil
}

func toIntegers[I constraints.Integer](numbers []float64) ([]I, error) {
	integers := make([]I, 0, len(numbers))
	for i, n := range numbers {
		integer, err := safecast.Convert[I](n)
		if err != nil {
			return nil, fmt.Errorf("element at index %d (%v) cannot be converted to %T: %w", i, n, integer, err)
		}
		integers = append(integers, integer)
	}
	return integers, nil
}
