package models

import "time"

// Faculty represents a faculty member who can receive feedback
type Faculty struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Department string    `json:"department" db:"department"`
	Subject    string    `json:"subject" db:"subject"`
	Image      *string   `json:"image,omitempty" db:"image"` // Stored image filename, nil when no photo was uploaded
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
