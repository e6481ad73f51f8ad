package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ID identifies a project, checklist item or todo.
//
// Older backups wrote identifiers as JSON numbers (creation timestamps and
// small ordinals), newer ones write strings. ID accepts both and always
// encodes as a string.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.New().String())
}

// String implements fmt.Stringer.
func (id ID) String() string { return string(id) }

// UnmarshalJSON decodes a JSON string or number into an ID.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}
