package model

import (
	"fmt"
	"sort"
	"strings"
)

// FormKind classifies alternate forms for the form filter.
type FormKind string

const (
	// FormMega matches mega evolutions.
	FormMega FormKind = "mega"
	// FormGmax matches gigantamax forms.
	FormGmax FormKind = "gmax"
	// FormOther matches named forms that are neither mega, gmax nor regional.
	FormOther FormKind = "other"
)

// FormKinds lists every form kind in display order.
var FormKinds = []FormKind{FormMega, FormGmax, FormOther}

// ParseFormKind parses a user-supplied form kind.
func ParseFormKind(s string) (FormKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mega":
		return FormMega, nil
	case "gmax", "gigantamax":
		return FormGmax, nil
	case "other", "others", "otherforms", "other-forms":
		return FormOther, nil
	default:
		return "", fmt.Errorf("invalid form kind %q (want mega, gmax or other)", s)
	}
}

// FormSet is a set of form kinds. An empty set means no form restriction.
type FormSet map[FormKind]struct{}

// NewFormSet builds a set from the given kinds.
func NewFormSet(kinds ...FormKind) FormSet {
	set := make(FormSet, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}

// Has reports whether kind is in the set.
func (s FormSet) Has(kind FormKind) bool {
	_, ok := s[kind]
	return ok
}

// Intersects reports whether the two sets share a kind.
func (s FormSet) Intersects(other FormSet) bool {
	for k := range s {
		if other.Has(k) {
			return true
		}
	}
	return false
}

// Clone returns a copy that can be mutated independently.
func (s FormSet) Clone() FormSet {
	out := make(FormSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Sorted returns the kinds in FormKinds order.
func (s FormSet) Sorted() []FormKind {
	out := make([]FormKind, 0, len(s))
	for _, k := range FormKinds {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// CaptureFilter restricts the list by caught status.
type CaptureFilter string

const (
	// CaptureAll applies no capture restriction.
	CaptureAll CaptureFilter = "all"
	// CaptureCaught keeps entries in the caught set.
	CaptureCaught CaptureFilter = "caught"
	// CaptureUncaught keeps entries missing from the caught set.
	CaptureUncaught CaptureFilter = "uncaught"
)

// ParseCaptureFilter parses a user-supplied capture filter. Empty means all.
func ParseCaptureFilter(s string) (CaptureFilter, error) {
	switch CaptureFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", CaptureAll:
		return CaptureAll, nil
	case CaptureCaught:
		return CaptureCaught, nil
	case CaptureUncaught:
		return CaptureUncaught, nil
	default:
		return "", fmt.Errorf("invalid capture filter %q (want all, caught or uncaught)", s)
	}
}

// Next cycles all -> caught -> uncaught -> all.
func (c CaptureFilter) Next() CaptureFilter {
	switch c {
	case CaptureAll, "":
		return CaptureCaught
	case CaptureCaught:
		return CaptureUncaught
	default:
		return CaptureAll
	}
}

// ImageStyle selects the artwork used to render an entry.
type ImageStyle string

const (
	// StyleOfficial renders the official artwork.
	StyleOfficial ImageStyle = "official"
	// StyleSprite renders the in-game sprite.
	StyleSprite ImageStyle = "sprite"
)

// ParseImageStyle parses a user-supplied image style. Empty means official.
func ParseImageStyle(s string) (ImageStyle, error) {
	switch ImageStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", StyleOfficial, "artwork":
		return StyleOfficial, nil
	case StyleSprite:
		return StyleSprite, nil
	default:
		return "", fmt.Errorf("invalid image style %q (want official or sprite)", s)
	}
}

// CaughtSet holds capture keys ("{id}-{subId or 0}"). It is supplied from
// outside and only ever read by the filter pipeline.
type CaughtSet map[string]struct{}

// NewCaughtSet builds a caught set from capture keys, ignoring blanks.
func NewCaughtSet(keys ...string) CaughtSet {
	set := make(CaughtSet, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		set[k] = struct{}{}
	}
	return set
}

// Has reports whether key is in the set.
func (s CaughtSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the keys in sorted order.
func (s CaughtSet) Keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Criteria holds every predicate controlling the visible list.
type Criteria struct {
	Generation *Category
	Forms      FormSet
	Caught     CaughtSet
	Search     string
	Capture    CaptureFilter
}

// IsZero reports whether the criteria leave the list untouched.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Search) == "" &&
		len(c.Forms) == 0 &&
		(c.Capture == "" || c.Capture == CaptureAll) &&
		c.Generation == nil
}
