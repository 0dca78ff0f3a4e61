package dto

// SubmitFeedbackRequest is the payload of a feedback submission.
// Every rating dimension must lie in [1,5].
type SubmitFeedbackRequest struct {
	FacultyID      int64   `json:"facultyId" binding:"required,min=1" example:"1"`
	Performance    int     `json:"performance" binding:"required,min=1,max=5" example:"4"`
	Knowledge      int     `json:"knowledge" binding:"required,min=1,max=5" example:"5"`
	TeachingSkills int     `json:"teachingSkills" binding:"required,min=1,max=5" example:"4"`
	Communication  int     `json:"communication" binding:"required,min=1,max=5" example:"3"`
	Behavior       int     `json:"behavior" binding:"required,min=1,max=5" example:"5"`
	Comments       *string `json:"comments,omitempty" example:"Clear lectures, fair grading."`
}

// EligibilityResponse reports whether the caller may still submit
// feedback for a faculty member
type EligibilityResponse struct {
	FacultyID int64 `json:"facultyId"`
	Eligible  bool  `json:"eligible"`
}
