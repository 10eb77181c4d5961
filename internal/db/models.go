package db

import "time"

// Panel names match the two panels of the TUI and the config keys.
const (
	PanelLeft  = "left"
	PanelRight = "right"
)

type Link struct {
	ID         string    `json:"id"`
	Panel      string    `json:"panel"` // left, right
	URL        string    `json:"url"`
	Folder     string    `json:"folder"` // folder the link was imported from
	ImportedAt time.Time `json:"imported_at"`
}
