package models

// ContentDraft is user input for a new item before the store has assigned
// an id. Tags are expected to be normalized by the caller.
type ContentDraft struct {
	Type  ContentType `json:"type"`
	Title string      `json:"title"`
	Link  string      `json:"link"`
	Tags  []string    `json:"tags"`
}
