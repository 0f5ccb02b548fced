package stats

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
)

var leadingDigits = regexp.MustCompile(`^\d+`)

// ParseTargetReps turns a rep target such as "10", "8-12", "5–8" or
// "10 reps" into the single number sets are compared against. Ranges yield
// their upper bound. Anything unparseable, "AMRAP" included, yields 0.
func ParseTargetReps(expr string) float64 {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0
	}
	f, err := strconv.ParseFloat(expr, 64)
	if err == nil {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if low, high, ok := cutRange(expr); ok {
		if n, ok := parseLeading(high); ok {
			return n
		}
		if n, ok := parseLeading(low); ok {
			return n
		}
		return 0
	}
	n, _ := parseLeading(expr)
	return n
}

// cutRange splits expr around the first hyphen or en dash.
func cutRange(expr string) (string, string, bool) {
	i := strings.IndexAny(expr, "-–")
	if i < 0 {
		return "", "", false
	}
	_, width := utf8.DecodeRuneInString(expr[i:])
	return expr[:i], expr[i+width:], true
}

func parseLeading(s string) (float64, bool) {
	m := leadingDigits.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// targetReps resolves the numeric rep target of an exercise: the stored
// number, else the parsed expression, else the default.
func targetReps(ex model.Exercise) float64 {
	if ex.NumericalTargetReps > 0 {
		return ex.NumericalTargetReps
	}
	if n := ParseTargetReps(ex.TargetReps); n > 0 {
		return n
	}
	return model.DefaultTargetReps
}

// setTargetReps is the rep target for one set, honouring a per-set override.
func setTargetReps(ex model.Exercise, s model.Set) float64 {
	if n := ParseTargetReps(string(s.Target)); n > 0 {
		return n
	}
	return targetReps(ex)
}
