// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

// Package event implements the games calendar: scheduled skirmishes and
// training days, publicly listed as upcoming or past.
package event

import "time"

// Event is one scheduled game.
type Event struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	Capacity    int       `json:"capacity"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Upcoming reports whether the event has not started yet.
func (e *Event) Upcoming() bool {
	return e.StartsAt.After(time.Now())
}

// Field identifiers for validation.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldStartsAt    = "starts_at"
	FieldCapacity    = "capacity"
)
