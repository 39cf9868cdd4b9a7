package app

// Screen represents the different screens of the dock
type Screen int

const (
	// BrowseScreen is the script catalog in list mode
	BrowseScreen Screen = iota
	// GridScreen is the script catalog in grid (button) mode
	GridScreen
	// FolderInputScreen lets the user enter the scripts folder path
	FolderInputScreen
	// HotkeyCaptureScreen waits for the key combination to bind
	HotkeyCaptureScreen
	// ConflictConfirmScreen asks whether to overwrite a taken combo
	ConflictConfirmScreen
	// HotkeysListScreen shows all current bindings
	HotkeysListScreen
	// HistoryScreen shows recent script runs
	HistoryScreen
	// OutputScreen shows the output of the last run
	OutputScreen
)
