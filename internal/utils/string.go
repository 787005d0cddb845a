package utils

import (
	"context"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// FindClosestString returns the candidate having the smallest edit distance to s, candidates whose distance is
// greater than maxDifferences are ignored. The search stops early if ctx is done.
func FindClosestString(ctx context.Context, candidates []string, s string, maxDifferences int) (closest string, distance int, ok bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	runes := []rune(s)
	distance = maxDifferences + 1

	for _, candidate := range candidates {
		select {
		case <-ctx.Done():
			return
		default:
		}

		d := levenshtein.DistanceForStrings([]rune(candidate), runes, levenshtein.DefaultOptions)
		if d < distance {
			closest = candidate
			distance = d
			ok = true
		}
	}

	if !ok {
		distance = 0
	}
	return
}
