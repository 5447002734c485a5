package notion

import (
	"encoding/json"
	"fmt"
)

// Block is one unit of page content as returned by the API. It is a raw
// JSON object; only a handful of keys are ever inspected or rewritten.
// A page object is Block-shaped too and reuses this type.
type Block map[string]any

// serverManagedKeys are assigned by the API on every object and rejected
// by the page-creation and block-append endpoints on write.
var serverManagedKeys = []string{
	"id",
	"created_time",
	"last_edited_time",
	"created_by",
	"last_edited_by",
}

// ID returns the block's id, or "" if unset.
func (b Block) ID() string {
	id, _ := b["id"].(string)
	return id
}

// URL returns the block's url, or "" if unset.
func (b Block) URL() string {
	u, _ := b["url"].(string)
	return u
}

// Type returns the block's type discriminator, or "" if unset.
func (b Block) Type() string {
	t, _ := b["type"].(string)
	return t
}

// TypePayload returns the type-specific payload object, e.g. the value
// under "paragraph" for a paragraph block. Nil when absent or not an
// object.
func (b Block) TypePayload() map[string]any {
	payload, _ := b[b.Type()].(map[string]any)
	return payload
}

// RichText returns the payload's rich-text run array, or nil when the
// block type carries none.
func (b Block) RichText() []any {
	payload := b.TypePayload()
	if payload == nil {
		return nil
	}
	runs, _ := payload["rich_text"].([]any)
	return runs
}

// StripServerFields removes the server-managed keys so the block can be
// submitted to a write endpoint.
func (b Block) StripServerFields() {
	for _, key := range serverManagedKeys {
		delete(b, key)
	}
}

// DeepCopy clones the block through a JSON round trip.
func (b Block) DeepCopy() (Block, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal block: %w", err)
	}
	var clone Block
	if err := json.Unmarshal(raw, &clone); err != nil {
		return nil, fmt.Errorf("failed to unmarshal block copy: %w", err)
	}
	return clone, nil
}
