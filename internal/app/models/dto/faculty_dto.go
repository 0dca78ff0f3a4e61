package dto

import "github.com/campusrate/campusrate/internal/app/models"

// CreateFacultyRequest carries the form fields of a faculty create.
// A photo is uploaded as a separate multipart file part.
type CreateFacultyRequest struct {
	Name       string `form:"name" binding:"required,min=2,max=100" example:"Dr. John Smith"`
	Department string `form:"department" binding:"required,min=2,max=100" example:"Computer Science"`
	Subject    string `form:"subject" binding:"required,min=2,max=100" example:"Data Structures"`
}

// UpdateFacultyRequest carries the form fields of a faculty update.
type UpdateFacultyRequest struct {
	Name       string `form:"name" binding:"required,min=2,max=100"`
	Department string `form:"department" binding:"required,min=2,max=100"`
	Subject    string `form:"subject" binding:"required,min=2,max=100"`
}

// FacultyResponse is a faculty record ready for display
type FacultyResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Subject    string  `json:"subject"`
	ImageURL   *string `json:"imageUrl,omitempty"`
}

// FacultyWithRatings merges a faculty record with its aggregated
// ratings. Faculty without feedback carry a zero-valued placeholder;
// producing that placeholder is presentation logic, the service layer
// itself reports absence.
type FacultyWithRatings struct {
	FacultyResponse
	Ratings models.RatingAverages `json:"ratings"`
}

// NewFacultyResponse maps a faculty model to its response form
func NewFacultyResponse(f *models.Faculty, imageBaseURL string) FacultyResponse {
	resp := FacultyResponse{
		ID:         f.ID,
		Name:       f.Name,
		Department: f.Department,
		Subject:    f.Subject,
	}
	if f.Image != nil {
		url := imageBaseURL + "/" + *f.Image
		resp.ImageURL = &url
	}
	return resp
}
