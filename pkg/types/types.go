// Package types holds the JSON payload shapes shared between llmctl and its
// script consumers (the runtime's tag listing and the shapes emitted by
// --json flags).
package types

// Model is one entry of the runtime's model listing.
type Model struct {
	// Model name as known to the runtime.
	// example: local/qwen2.5-coder-7b-q4km
	Name string `json:"name"`
	// On-disk size in bytes; optional, 0 when the runtime omits it.
	Size int64 `json:"size,omitempty"`
}

// SizeGB converts the byte count to gigabytes for display.
func (m Model) SizeGB() float64 { return float64(m.Size) / (1 << 30) }

// TagsResponse wraps the list returned by GET /api/tags. Models is a pointer
// so a body missing the field can be told apart from an empty list.
type TagsResponse struct {
	Models *[]Model `json:"models"`
}

// Selection is the machine-readable output of `llmctl select --json`.
type Selection struct {
	// Detected host memory in whole gigabytes; 0 when undeterminable.
	RAMGB int `json:"ram_gb"`
	// Chosen model identifier.
	Model string `json:"model"`
}
