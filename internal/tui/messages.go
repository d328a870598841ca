package tui

import "github.com/Veraticus/dex/internal/store"

// actionMsg carries a store action produced by a command, typically a load
// completion.
type actionMsg struct {
	action store.Action
}
