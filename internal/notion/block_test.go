package notion

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStripServerFields(t *testing.T) {
	b := Block{
		"object":           "block",
		"id":               "blk-1",
		"created_time":     "2023-01-01T00:00:00.000Z",
		"last_edited_time": "2023-01-02T00:00:00.000Z",
		"created_by":       map[string]any{"id": "user-1"},
		"last_edited_by":   map[string]any{"id": "user-2"},
		"type":             "paragraph",
		"has_children":     false,
		"paragraph":        map[string]any{"rich_text": []any{}},
	}

	b.StripServerFields()

	for _, key := range []string{"id", "created_time", "last_edited_time", "created_by", "last_edited_by"} {
		if _, ok := b[key]; ok {
			t.Errorf("key %q survived StripServerFields", key)
		}
	}
	// Content keys are untouched.
	if b.Type() != "paragraph" {
		t.Errorf("type = %q, want paragraph", b.Type())
	}
	if _, ok := b["paragraph"]; !ok {
		t.Error("paragraph payload removed")
	}
}

func TestBlockAccessors(t *testing.T) {
	raw := `{
		"id": "blk-2",
		"url": "https://www.notion.so/blk-2",
		"type": "heading_1",
		"heading_1": {
			"rich_text": [
				{"plain_text": "Hello", "text": {"content": "Hello"}}
			]
		}
	}`
	var b Block
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if b.ID() != "blk-2" {
		t.Errorf("ID() = %q, want blk-2", b.ID())
	}
	if b.URL() != "https://www.notion.so/blk-2" {
		t.Errorf("URL() = %q", b.URL())
	}
	if b.Type() != "heading_1" {
		t.Errorf("Type() = %q, want heading_1", b.Type())
	}
	runs := b.RichText()
	if len(runs) != 1 {
		t.Fatalf("RichText() returned %d runs, want 1", len(runs))
	}
	run := runs[0].(map[string]any)
	if run["plain_text"] != "Hello" {
		t.Errorf("plain_text = %v, want Hello", run["plain_text"])
	}
}

func TestBlockAccessorsMissing(t *testing.T) {
	b := Block{"type": "divider", "divider": map[string]any{}}
	if b.ID() != "" || b.URL() != "" {
		t.Error("expected empty id and url")
	}
	if b.RichText() != nil {
		t.Error("expected nil rich text for divider")
	}

	empty := Block{}
	if empty.TypePayload() != nil {
		t.Error("expected nil payload for untyped block")
	}
}

func TestDeepCopy(t *testing.T) {
	b := Block{
		"type": "paragraph",
		"paragraph": map[string]any{
			"rich_text": []any{
				map[string]any{"plain_text": "original"},
			},
		},
	}

	clone, err := b.DeepCopy()
	if err != nil {
		t.Fatalf("DeepCopy failed: %v", err)
	}
	if !reflect.DeepEqual(b, clone) {
		t.Errorf("clone differs from original: %v vs %v", clone, b)
	}

	// Mutating the clone must not touch the original.
	clone["paragraph"].(map[string]any)["rich_text"].([]any)[0].(map[string]any)["plain_text"] = "changed"
	got := b["paragraph"].(map[string]any)["rich_text"].([]any)[0].(map[string]any)["plain_text"]
	if got != "original" {
		t.Errorf("original mutated through clone: %v", got)
	}
}
