package bindings

import (
	"fmt"

	"github.com/script-dock/internal/keyseq"
)

// Binding associates a script (by its folder-relative key) with a key
// combination in normalized form.
type Binding struct {
	Script string `json:"script"`
	Combo  string `json:"combo"`
}

// ConflictError is returned when a combo is already held by another script.
// The caller decides whether to prompt for an overwrite.
type ConflictError struct {
	Combo  string // normalized combo that was requested
	Script string // script currently holding it
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s is already bound to %s", keyseq.Display(e.Combo), e.Script)
}
