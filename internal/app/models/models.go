package models

// RoleType represents the role of an authenticated principal
type RoleType string

const (
	// RoleStudent is a registered student account
	RoleStudent RoleType = "STUDENT"
	// RoleAdmin is the single configured administrator principal
	RoleAdmin RoleType = "ADMIN"
)

// AdminUserID is the synthetic identity of the administrator. The
// administrator is never stored in the students table.
const AdminUserID int64 = 0
