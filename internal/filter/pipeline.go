// Package filter derives the visible list from the full catalog and the
// current criteria. Everything here is pure.
package filter

import (
	"strconv"
	"strings"

	"github.com/Veraticus/dex/internal/model"
)

// regionalForms are form types that never count as "other" forms.
var regionalForms = map[string]struct{}{
	"mega":       {},
	"gmax":       {},
	"gigantamax": {},
	"alola":      {},
	"galar":      {},
	"hisui":      {},
	"paldea":     {},
}

// Apply narrows all by the criteria. Stages run in a fixed order (search,
// form, capture, generation) and each keeps source order. The result is a
// new slice; all is never modified.
func Apply(all []model.Entry, c model.Criteria) []model.Entry {
	query := strings.ToLower(strings.TrimSpace(c.Search))
	var rng Range
	hasRange := false
	if c.Generation != nil {
		rng, hasRange = ParseRange(c.Generation.Range)
	}

	out := make([]model.Entry, 0, len(all))
	for _, e := range all {
		if query != "" && !MatchesSearch(e, query) {
			continue
		}
		if len(c.Forms) > 0 && !Classify(e).Intersects(c.Forms) {
			continue
		}
		if !matchesCapture(e, c.Capture, c.Caught) {
			continue
		}
		if hasRange && !rng.Contains(e.ID) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// MatchesSearch reports whether the lower-cased query is a substring of the
// entry's name, comma-joined types, category or decimal id.
func MatchesSearch(e model.Entry, query string) bool {
	if strings.Contains(strings.ToLower(e.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(strings.Join(e.Types, ", ")), query) {
		return true
	}
	if e.Category != nil && strings.Contains(strings.ToLower(*e.Category), query) {
		return true
	}
	return strings.Contains(strconv.Itoa(e.ID), query)
}

// Classify returns the form kinds an entry belongs to; it may be empty.
func Classify(e model.Entry) model.FormSet {
	kinds := model.FormSet{}

	formType := ""
	if e.FormType != nil {
		formType = strings.ToLower(*e.FormType)
	}

	switch formType {
	case "mega":
		kinds[model.FormMega] = struct{}{}
	case "gmax", "gigantamax":
		kinds[model.FormGmax] = struct{}{}
	}

	if e.FormName != nil && *e.FormName != "" {
		if _, regional := regionalForms[formType]; !regional {
			kinds[model.FormOther] = struct{}{}
		}
	}

	return kinds
}

// CaptureKey returns the caught-set key for an entry.
func CaptureKey(e model.Entry) string {
	return e.CaptureKey()
}

func matchesCapture(e model.Entry, filter model.CaptureFilter, caught model.CaughtSet) bool {
	switch filter {
	case model.CaptureCaught:
		return caught.Has(e.CaptureKey())
	case model.CaptureUncaught:
		return !caught.Has(e.CaptureKey())
	default:
		return true
	}
}
