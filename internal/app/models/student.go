package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64     `json:"id" db:"id" example:"1"`                               // Unique identifier for the student
	Name       string    `json:"name" db:"name" example:"Jane Doe"`                    // Student's display name
	Email      string    `json:"email" db:"email" example:"jane@college.edu"`          // Student's email address (unique)
	Password   string    `json:"-" db:"password"`                                      // Bcrypt hash, excluded from JSON
	Department string    `json:"department" db:"department" example:"Computer Science"` // Department the student belongs to
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`                            // Timestamp when the account was created
}
