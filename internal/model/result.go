package model

import "time"

// Grade is the letter grade derived from a result score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
)

// Result records the outcome of a completed enrollment.
type Result struct {
	ID           int       `json:"id"`
	EnrollmentID int       `json:"enrollment_id"`
	Score        float64   `json:"score"`
	Grade        Grade     `json:"grade"`
	GradePoint   int       `json:"grade_point"`
	RecordedBy   int       `json:"recorded_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined fields for transcript views.
	CourseCode  string   `json:"course_code,omitempty"`
	CourseTitle string   `json:"course_title,omitempty"`
	CourseUnits int      `json:"course_units,omitempty"`
	Session     string   `json:"session,omitempty"`
	Semester    Semester `json:"semester,omitempty"`
}

// EnterResultRequest is the payload for recording a result.
type EnterResultRequest struct {
	EnrollmentID int     `json:"enrollment_id" binding:"required"`
	Score        float64 `json:"score" binding:"min=0,max=100"`
}

// GPASummary is the roll-up of a student's results for one session/semester.
type GPASummary struct {
	Session      string   `json:"session"`
	Semester     Semester `json:"semester"`
	TotalUnits   int      `json:"total_units"`
	TotalPoints  int      `json:"total_points"`
	GPA          float64  `json:"gpa"`
	CourseCount  int      `json:"course_count"`
}

// TranscriptResponse is a student's full result history with aggregates.
type TranscriptResponse struct {
	Results   []Result     `json:"results"`
	Summaries []GPASummary `json:"summaries"`
	CGPA      float64      `json:"cgpa"`
}
