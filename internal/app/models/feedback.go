package models

import "time"

// Rating bounds for every feedback dimension.
const (
	RatingMin = 1
	RatingMax = 5
)

// Ratings holds the five integer rating dimensions of a feedback
// submission, each constrained to [1,5].
type Ratings struct {
	Performance    int `json:"performance" db:"performance"`
	Knowledge      int `json:"knowledge" db:"knowledge"`
	TeachingSkills int `json:"teachingSkills" db:"teaching_skills"`
	Communication  int `json:"communication" db:"communication"`
	Behavior       int `json:"behavior" db:"behavior"`
}

// Valid reports whether every dimension lies within [RatingMin, RatingMax].
func (r Ratings) Valid() bool {
	for _, v := range [5]int{r.Performance, r.Knowledge, r.TeachingSkills, r.Communication, r.Behavior} {
		if v < RatingMin || v > RatingMax {
			return false
		}
	}
	return true
}

// Feedback represents a single immutable rating submission. Ratings and
// comment are never edited after creation.
type Feedback struct {
	ID        int64   `json:"id" db:"id"`
	StudentID int64   `json:"studentId" db:"student_id"`
	FacultyID int64   `json:"facultyId" db:"faculty_id"`
	Ratings
	Comments  *string   `json:"comments,omitempty" db:"comments"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FacultyFeedback is a feedback row joined with the submitting
// student's department, for the per-faculty report.
type FacultyFeedback struct {
	Feedback
	StudentDepartment string `json:"studentDepartment" db:"student_department"`
}

// FeedbackDetails is a feedback row joined with details of both the
// submitting student and the target faculty member, for the
// administrator-wide listing.
type FeedbackDetails struct {
	Feedback
	StudentName       string `json:"studentName" db:"student_name"`
	StudentDepartment string `json:"studentDepartment" db:"student_department"`
	FacultyName       string `json:"facultyName" db:"faculty_name"`
	FacultyDepartment string `json:"facultyDepartment" db:"faculty_department"`
	FacultySubject    string `json:"facultySubject" db:"faculty_subject"`
}

// RatingAverages holds the aggregated ratings for one faculty member.
// Absence of a RatingAverages value means "no feedback yet", which is
// distinct from a zero-valued record.
type RatingAverages struct {
	Performance    float64 `json:"performance"`
	Knowledge      float64 `json:"knowledge"`
	TeachingSkills float64 `json:"teachingSkills"`
	Communication  float64 `json:"communication"`
	Behavior       float64 `json:"behavior"`
	Overall        float64 `json:"overall"`
	TotalFeedback  int64   `json:"totalFeedback"`
}
