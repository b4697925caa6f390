package types

// ChangeProposal is a structured, previewable, path-addressed edit to the
// resume document pending user approval. Values are either strings or
// string slices depending on the target path; nil means the path is
// currently unset.
//
// Proposals are held as pending session state and either discarded on
// reject or merged into the document on accept. They are never persisted
// independently.
type ChangeProposal struct {
	Path        string `json:"path"`
	OldValue    any    `json:"oldValue"`
	NewValue    any    `json:"newValue"`
	Description string `json:"description"`
}
