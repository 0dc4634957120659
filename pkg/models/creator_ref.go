package model

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// CreatorRef identifies a user on a task. Upstream payloads carry it either
// as a bare id string or as an expanded {_id, name} object.
type CreatorRef struct {
	ID       string
	Name     string
	Expanded bool
}

func RefID(id string) CreatorRef {
	return CreatorRef{ID: id}
}

func RefExpanded(id, name string) CreatorRef {
	return CreatorRef{ID: id, Name: name, Expanded: true}
}

// Normalize returns the identifier used for every identity comparison.
func (r CreatorRef) Normalize() string {
	return strings.TrimSpace(r.ID)
}

// DisplayName returns the name when expanded, else the id.
func (r CreatorRef) DisplayName() string {
	if r.Expanded && r.Name != "" {
		return r.Name
	}
	return r.Normalize()
}

// SameAs compares two references by normalized id.
func (r CreatorRef) SameAs(id string) bool {
	n := r.Normalize()
	return n != "" && n == strings.TrimSpace(id)
}

type expandedRef struct {
	UnderscoreID any    `json:"_id,omitempty"`
	ID           any    `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
}

func (r CreatorRef) MarshalJSON() ([]byte, error) {
	if !r.Expanded {
		return sonic.Marshal(r.ID)
	}
	return sonic.Marshal(struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}{ID: r.ID, Name: r.Name})
}

func (r *CreatorRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = CreatorRef{}
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := sonic.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = RefID(id)
		return nil
	}

	var raw expandedRef
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("creator reference: %w", err)
	}

	id := scalarString(raw.UnderscoreID)
	if id == "" {
		id = scalarString(raw.ID)
	}
	*r = RefExpanded(id, raw.Name)
	return nil
}

// scalarString renders ids that arrive as strings or numbers.
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
