package components

import "github.com/Veraticus/dex/internal/model"

// EntrySelectedMsg is sent when an entry is chosen from the list.
type EntrySelectedMsg struct {
	Entry model.Entry
	Index int
}

// BackToListMsg requests to go back to the entry list.
type BackToListMsg struct{}
