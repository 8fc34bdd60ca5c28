package domain

import "time"

type Workspace struct {
	ID          string
	Name        string
	Slug        string // globally unique, URL-safe
	Description string
	OwnerID     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
