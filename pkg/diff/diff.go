package diff

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/wI2L/jsondiff"
)

// PatchOp is a single change between two json documents. Path uses dots
// between segments, e.g. "attachments.0.url".
type PatchOp struct {
	Op       string      `json:"op"`
	Actor    string      `json:"actor,omitempty"`
	Path     string      `json:"path"`
	NewValue interface{} `json:"new_value,omitempty"`
	OldValue interface{} `json:"old_value,omitempty"`
}

// GetChangelog compares the json encodings of a and b and returns the
// operations turning a into b, each carrying the value it replaced.
func GetChangelog(a, b interface{}) ([]*PatchOp, error) {
	jsonA, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	jsonB, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}

	patch, err := jsondiff.CompareJSON(jsonA, jsonB)
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return nil, nil
	}

	var original interface{}
	if err := json.Unmarshal(jsonA, &original); err != nil {
		return nil, err
	}

	changes := make([]*PatchOp, 0, len(patch))
	for _, op := range patch {
		segments := parseJSONPointer(string(op.Path))
		change := &PatchOp{
			Op:       op.Type,
			Path:     strings.Join(segments, "."),
			NewValue: op.Value,
		}
		if op.Type == "remove" || op.Type == "replace" {
			if change.OldValue, err = lookup(original, segments); err != nil {
				return nil, err
			}
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// WithActor stamps every change with actor
func WithActor(changes []*PatchOp, actor string) []*PatchOp {
	for _, c := range changes {
		c.Actor = actor
	}
	return changes
}

func lookup(doc interface{}, segments []string) (interface{}, error) {
	current := doc
	for _, s := range segments {
		switch node := current.(type) {
		case map[string]interface{}:
			current = node[s]
		case []interface{}:
			i, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("invalid array index: %s", s)
			}
			if i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index out of range: %d", i)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("invalid path segment: %s", s)
		}
	}
	return current, nil
}

// parseJSONPointer splits an RFC 6901 pointer into unescaped segments
func parseJSONPointer(pointer string) []string {
	if pointer == "" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	for i := range parts {
		parts[i] = strings.ReplaceAll(parts[i], "~1", "/")
		parts[i] = strings.ReplaceAll(parts[i], "~0", "~")
	}
	return parts
}
