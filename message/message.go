// Package message holds messages shared between the model and its commands.
package message

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// SavedMsg reports the outcome of persisting a generation of filters
type SavedMsg struct {
	Source     string
	Count      int
	Generation int
	Err        error
}

// ExportedMsg reports filters written to a file
type ExportedMsg struct {
	Path string
}
