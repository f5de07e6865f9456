package epochlog

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Classify buckets a continuous action target into class 0, 1 or 2.
func Classify(v float64) int {
	switch {
	case v < 0.5:
		return 0
	case v < 1.5:
		return 1
	default:
		return 2
	}
}

func ClassifyAll(values []float64) []int {
	classes := make([]int, len(values))
	for i, v := range values {
		classes[i] = Classify(v)
	}
	return classes
}

// FlattenNumbers walks a decoded JSON value (a number or nested arrays of
// numbers) and returns its numbers in row-major order.
func FlattenNumbers(raw interface{}) ([]float64, error) {
	out := []float64{}
	var walk func(v interface{}) error
	walk = func(v interface{}) error {
		switch x := v.(type) {
		case float64:
			out = append(out, x)
		case json.Number:
			f, err := x.Float64()
			if err != nil {
				return errors.Wrapf(ErrParse, "bad number %q", x.String())
			}
			out = append(out, f)
		case []interface{}:
			for _, item := range x {
				if err := walk(item); err != nil {
					return err
				}
			}
		default:
			return errors.Wrapf(ErrParse, "expected number or array, got %T", v)
		}
		return nil
	}

	if err := walk(raw); err != nil {
		return nil, err
	}
	return out, nil
}

// argmax returns the index of the highest score, the first one on ties.
func argmax(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
