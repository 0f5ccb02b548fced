package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

// Value is a numeric field exactly as the user entered it. The logging form
// stores both JSON numbers and free-form strings, so the text is kept and
// interpreted on read.
type Value string

// Num returns the Value for a number.
func Num(f float64) Value {
	return Value(strconv.FormatFloat(f, 'f', -1, 64))
}

// IsSet reports whether anything was entered.
func (v Value) IsSet() bool {
	return strings.TrimSpace(string(v)) != ""
}

// Float returns the numeric value, or 0 when v is empty or not a finite number.
func (v Value) Float() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Minutes interprets v as minutes. Clock notation "m:ss" is accepted.
func (v Value) Minutes() float64 {
	if secs, ok := timecalc.ParseClock(string(v)); ok {
		return secs / 60
	}
	return v.Float()
}

// Seconds interprets v as seconds. Clock notation "m:ss" is accepted.
func (v Value) Seconds() float64 {
	if secs, ok := timecalc.ParseClock(string(v)); ok {
		return secs
	}
	return v.Float()
}

// MarshalJSON writes numbers as JSON numbers and anything else as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	s := strings.TrimSpace(string(v))
	if _, err := strconv.ParseFloat(s, 64); err == nil && json.Valid([]byte(s)) {
		return []byte(s), nil
	}
	return json.Marshal(string(v))
}

// UnmarshalJSON accepts a JSON number, a string or null. Other JSON types
// leave v empty instead of failing the whole day log.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*v = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*v = Value(data)
	default:
		*v = ""
	}
	return nil
}
