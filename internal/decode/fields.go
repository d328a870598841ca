package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/spf13/cast"
)

var (
	errMissing    = errors.New("missing required field")
	errNotInteger = errors.New("not an integer")
)

// record is one raw JSON object with its fields left undecoded.
type record map[string]json.RawMessage

// present reports whether raw holds a non-null value.
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// requiredInt decodes an integer that must be present. Integral floats such
// as 4.0 are accepted; strings are not.
func requiredInt(raw json.RawMessage) (int, error) {
	if !present(raw) {
		return 0, errMissing
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, errNotInteger
	}
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errNotInteger
	}
	return int(f), nil
}

// optionalInt decodes an integer or returns nil.
func optionalInt(raw json.RawMessage) *int {
	i, err := requiredInt(raw)
	if err != nil {
		return nil
	}
	return &i
}

// stringOrEmpty decodes a string, defaulting to "".
func stringOrEmpty(raw json.RawMessage) string {
	if s := optionalString(raw); s != nil {
		return *s
	}
	return ""
}

// optionalString decodes a string or returns nil.
func optionalString(raw json.RawMessage) *string {
	if !present(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

// numberOrNumericString decodes a JSON number, falling back to a JSON string
// holding a number. Anything else, including non-finite values, is absent.
func numberOrNumericString(raw json.RawMessage) *float64 {
	if !present(raw) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// stringSequence decodes an array of strings, defaulting to an empty slice.
func stringSequence(raw json.RawMessage) []string {
	if !present(raw) {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

// sequenceOrCSV decodes an array of strings, falling back to a single
// comma-separated string. Pieces are whitespace-trimmed and blanks dropped.
func sequenceOrCSV(raw json.RawMessage) []string {
	if !present(raw) {
		return []string{}
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err == nil {
		return out
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return []string{}
	}
	return splitCSV(s)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
