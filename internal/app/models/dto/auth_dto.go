package dto

// RegisterStudentRequest is the student signup payload
type RegisterStudentRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email      string `json:"email" binding:"required,email" example:"jane@college.edu"`
	Password   string `json:"password" binding:"required,min=6" example:"secret123"`
	Department string `json:"department" binding:"required,min=2,max=100" example:"Computer Science"`
}

// LoginRequest is the login payload for both students and the administrator
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@college.edu"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// TokenResponse carries the issued access token and the identity it represents
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType" example:"Bearer"`
	ExpiresIn   int          `json:"expiresIn" example:"43200"`
	User        *UserProfile `json:"user"`
}

// UserProfile is the identity exposed to callers. Department is empty
// for the administrator.
type UserProfile struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"Jane Doe"`
	Email      string `json:"email" example:"jane@college.edu"`
	RoleType   string `json:"roleType" example:"STUDENT" enums:"STUDENT,ADMIN"`
	Department string `json:"department,omitempty" example:"Computer Science"`
}
