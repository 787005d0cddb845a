package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inoxlang/viewseq/internal/utils"
	"github.com/inoxlang/viewseq/internal/views"
)

const (
	STAGE_SEPARATOR = "|"

	ALL_STAGE  = "all"
	DROP_STAGE = "drop"
	SUB_STAGE  = "sub"
	NEXT_STAGE = "next"
	PREV_STAGE = "prev"
)

var (
	STAGES = []string{ALL_STAGE, DROP_STAGE, SUB_STAGE, NEXT_STAGE, PREV_STAGE}

	STAGE_ARG_COUNTS = map[string]int{
		ALL_STAGE:  0,
		DROP_STAGE: 1,
		SUB_STAGE:  2,
		NEXT_STAGE: 1,
		PREV_STAGE: 1,
	}

	ErrUnknownStage  = errors.New("unknown pipeline stage")
	ErrEmptyStage    = errors.New("empty pipeline stage")
	ErrPipelineFault = errors.New("pipeline failed")
)

// stage is a parsed pipeline stage such as 'drop 2' or 'sub 1 3'.
type stage struct {
	name string
	args []int
}

func (s stage) String() string {
	parts := []string{s.name}
	for _, arg := range s.args {
		parts = append(parts, strconv.Itoa(arg))
	}
	return strings.Join(parts, " ")
}

func parsePipeline(s string) ([]stage, error) {
	var stages []stage
	if strings.TrimSpace(s) == "" {
		return stages, nil
	}

	for i, part := range strings.Split(s, STAGE_SEPARATOR) {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w at index %d", ErrEmptyStage, i)
		}

		name := fields[0]
		argCount, ok := STAGE_ARG_COUNTS[name]
		if !ok {
			if closest, _, found := utils.FindClosestString(nil, STAGES, name, 2); found {
				return nil, fmt.Errorf("%w: %q, did you mean %q ?", ErrUnknownStage, name, closest)
			}
			return nil, fmt.Errorf("%w: %q", ErrUnknownStage, name)
		}
		if len(fields)-1 != argCount {
			return nil, fmt.Errorf("stage %q expects %d argument(s), got %d", name, argCount, len(fields)-1)
		}

		st := stage{name: name}
		for _, field := range fields[1:] {
			arg, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid argument for stage %q: %w", name, err)
			}
			if arg < 0 {
				return nil, fmt.Errorf("invalid argument for stage %q: %w", name, views.ErrNegativeCount)
			}
			st.args = append(st.args, arg)
		}
		stages = append(stages, st)
	}
	return stages, nil
}

// adaptorOf returns the adaptor implementing the stage for views having the position type P.
func adaptorOf[T any, P views.Iterator[T, P]](s stage) views.Adaptor {
	switch s.name {
	case DROP_STAGE:
		return views.Dropping(s.args[0])
	case SUB_STAGE:
		from, to := s.args[0], s.args[1]
		return views.AdaptorFunc[T, P](func(v views.View[T, P]) views.View[T, P] {
			return subRange(v, from, to)
		})
	case NEXT_STAGE:
		n := s.args[0]
		return views.AdaptorFunc[T, P](func(v views.View[T, P]) views.View[T, P] {
			if sized, ok := v.(views.SizedSubView[T, P]); ok {
				return sized.Next(n)
			}
			return asSubView(v).Next(n)
		})
	case PREV_STAGE:
		n := s.args[0]
		return views.AdaptorFunc[T, P](func(v views.View[T, P]) views.View[T, P] {
			if sized, ok := v.(views.SizedSubView[T, P]); ok {
				return sized.Prev(n)
			}
			return asSubView(v).Prev(n)
		})
	default:
		return views.AdaptorFunc[T, P](func(v views.View[T, P]) views.View[T, P] {
			return views.All[T, P](v)
		})
	}
}

func asSubView[T any, P views.Iterator[T, P]](v views.View[T, P]) views.SubView[T, P] {
	if sub, ok := v.(views.SubView[T, P]); ok {
		return sub
	}
	return views.SubOf[T, P](v)
}

// subRange returns the view between the from-th and the to-th positions of v, both positions are
// clamped to the end of v.
func subRange[T any, P views.Iterator[T, P]](v views.View[T, P], from, to int) views.View[T, P] {
	if to < from {
		to = from
	}

	begin, missingBegin := views.Advance[T, P](v.Begin(), from, v.End())
	end, missingEnd := views.Advance[T, P](v.Begin(), to, v.End())

	if _, sized := views.SizeOf(v); sized {
		return views.SubN[T, P](begin, end, (to-missingEnd)-(from-missingBegin))
	}
	return views.Sub[T, P](begin, end)
}

type report struct {
	Source   string `json:"source"`
	Pipeline string `json:"pipeline"`
	Elements any    `json:"elements"`

	// size of the resulting view, the number of traversed elements if the view is not sized.
	Size     int    `json:"size"`
	Sized    bool   `json:"sized"`
	Borrowed bool   `json:"borrowed"`
	Caps     string `json:"caps"`
}

// runPipeline borrows *r, applies the stages and collects the elements of the resulting view.
// Precondition violations (such as stepping backward with forward-only positions) are reported as errors.
func runPipeline[T any, P views.Iterator[T, P], R views.Range[T, P]](
	r *R, stages []stage, readonly bool, logger zerolog.Logger,
) (rep report, finalErr error) {
	defer func() {
		if e := recover(); e != nil {
			finalErr = fmt.Errorf("%w: %w", ErrPipelineFault, utils.ConvertPanicValueToError(e))
		}
	}()

	adaptors := make([]views.Adaptor, 0, len(stages))
	for _, s := range stages {
		logger.Debug().Str("stage", s.String()).Msg("add stage")
		adaptors = append(adaptors, adaptorOf[T, P](s))
	}

	chain := views.Compose(adaptors...)
	v := views.Pipe[T, P](views.Ref[T, P](r), chain)

	elements := []T{}
	if readonly {
		for it, end := v.CBegin(), v.CEnd(); !it.Equal(end); it = it.Next() {
			elements = append(elements, it.Get())
		}
	} else {
		elements = views.Collect[T, P](v)
	}

	rep = report{
		Pipeline: chain.String(),
		Elements: elements,
		Size:     len(elements),
		Borrowed: v.BorrowedRange(),
		Caps:     v.Caps().String(),
	}
	if size, ok := views.SizeOf(v); ok {
		rep.Size = size
		rep.Sized = true
	}

	logger.Debug().Int("elements", len(elements)).Bool("sized", rep.Sized).Msg("pipeline done")
	return rep, nil
}
