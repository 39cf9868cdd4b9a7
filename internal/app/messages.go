package app

import (
	"github.com/script-dock/internal/bindings"
	"github.com/script-dock/internal/history"
	"github.com/script-dock/internal/runner"
	"github.com/script-dock/internal/scripts"
)

// Messages are custom events sent through the Bubble Tea update loop

// scriptsScannedMsg is sent when the scripts folder has been rescanned
type scriptsScannedMsg struct {
	scripts []scripts.Script
	dropped []bindings.Binding // bindings pruned by reconcile
	err     error
}

// scriptRanMsg is sent when a script run has finished
type scriptRanMsg struct {
	script string
	result runner.Result
	err    error
}

// historyLoadedMsg is sent when recent runs have been loaded
type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}
