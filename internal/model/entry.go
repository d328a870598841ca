// Package model defines the catalog entities shared by the decoder, the
// filter pipeline, the store and every renderer.
package model

import "fmt"

// Entry is a single catalog item.
type Entry struct {
	SubID     *int     `json:"sub_id,omitempty"`
	FormName  *string  `json:"form_name,omitempty"`
	FormType  *string  `json:"form_type,omitempty"`
	Image     *string  `json:"image,omitempty"`
	Height    *float64 `json:"height,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Gender    *string  `json:"gender,omitempty"`
	Name      string   `json:"name"`
	Abilities []string `json:"abilities"`
	Weakness  []string `json:"weakness"`
	Types     []string `json:"types"`
	ID        int      `json:"id"`
}

// CaptureKey returns the caught-set identity of the entry: "{id}-{subId or 0}".
func (e Entry) CaptureKey() string {
	sub := 0
	if e.SubID != nil {
		sub = *e.SubID
	}
	return fmt.Sprintf("%d-%d", e.ID, sub)
}

// DisplayName returns the name with the form name appended when present.
func (e Entry) DisplayName() string {
	if e.FormName != nil && *e.FormName != "" {
		return fmt.Sprintf("%s (%s)", e.Name, *e.FormName)
	}
	return e.Name
}

// Number returns the zero-padded catalog number, e.g. "#0025".
func (e Entry) Number() string {
	return fmt.Sprintf("#%04d", e.ID)
}
