package model

import "task-tracker.com/task-tracker/internal/constants"

// Actor is the signed-in user. Role is fixed for the lifetime of a session.
type Actor struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Role constants.Role `json:"role"`
}

func (a Actor) Ref() CreatorRef {
	return RefExpanded(a.ID, a.Name)
}
