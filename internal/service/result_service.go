package service

import (
	"context"
	"errors"
	"math"

	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// Result errors surfaced to handlers.
var (
	ErrResultExists      = errors.New("result already recorded for enrollment")
	ErrEnrollmentDropped = errors.New("cannot record a result for a dropped enrollment")
	ErrScoreOutOfRange   = errors.New("score must be between 0 and 100")
)

// ResultService handles result entry and GPA aggregation.
type ResultService struct {
	resultRepo     *repository.ResultRepository
	enrollmentRepo *repository.EnrollmentRepository
}

// NewResultService creates a new ResultService.
func NewResultService(resultRepo *repository.ResultRepository, enrollmentRepo *repository.EnrollmentRepository) *ResultService {
	return &ResultService{resultRepo: resultRepo, enrollmentRepo: enrollmentRepo}
}

// GradeForScore maps a 0..100 score to its letter grade and grade point.
func GradeForScore(score float64) (model.Grade, int) {
	switch {
	case score >= 70:
		return model.GradeA, 5
	case score >= 60:
		return model.GradeB, 4
	case score >= 50:
		return model.GradeC, 3
	case score >= 45:
		return model.GradeD, 2
	case score >= 40:
		return model.GradeE, 1
	default:
		return model.GradeF, 0
	}
}

// Enter records a result for an enrollment, deriving the grade from the
// score and marking the enrollment COMPLETED.
func (s *ResultService) Enter(ctx context.Context, enrollmentID int, score float64, staffID int) (*model.Result, error) {
	if score < 0 || score > 100 {
		return nil, ErrScoreOutOfRange
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.Status == model.EnrollmentDropped {
		return nil, ErrEnrollmentDropped
	}

	exists, err := s.resultRepo.ExistsForEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrResultExists
	}

	grade, point := GradeForScore(score)
	result := &model.Result{
		EnrollmentID: enrollmentID,
		Score:        score,
		Grade:        grade,
		GradePoint:   point,
		RecordedBy:   staffID,
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	result.CourseCode = enrollment.CourseCode
	result.CourseTitle = enrollment.CourseTitle
	result.CourseUnits = enrollment.CourseUnits
	result.Session = enrollment.Session
	result.Semester = enrollment.Semester
	return result, nil
}

// ListByCourse retrieves a course's results for a session.
func (s *ResultService) ListByCourse(ctx context.Context, courseID int, session string) ([]model.Result, error) {
	return s.resultRepo.ListByCourse(ctx, courseID, session)
}

// Transcript returns a student's full result history with per-semester GPA
// summaries and the cumulative GPA.
func (s *ResultService) Transcript(ctx context.Context, studentID int) (*model.TranscriptResponse, error) {
	results, err := s.resultRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	summaries := Summarize(results)
	return &model.TranscriptResponse{
		Results:   results,
		Summaries: summaries,
		CGPA:      CumulativeGPA(results),
	}, nil
}

// Summarize rolls results up into per-session/semester GPA summaries. GPA is
// the unit-weighted mean of grade points, rounded to two decimals. Results
// arrive ordered by session and semester, so grouping preserves order.
func Summarize(results []model.Result) []model.GPASummary {
	var summaries []model.GPASummary
	idx := make(map[string]int)

	for _, res := range results {
		key := res.Session + "|" + string(res.Semester)
		i, ok := idx[key]
		if !ok {
			summaries = append(summaries, model.GPASummary{Session: res.Session, Semester: res.Semester})
			i = len(summaries) - 1
			idx[key] = i
		}
		summaries[i].TotalUnits += res.CourseUnits
		summaries[i].TotalPoints += res.GradePoint * res.CourseUnits
		summaries[i].CourseCount++
	}

	for i := range summaries {
		if summaries[i].TotalUnits > 0 {
			summaries[i].GPA = round2(float64(summaries[i].TotalPoints) / float64(summaries[i].TotalUnits))
		}
	}
	return summaries
}

// CumulativeGPA computes the unit-weighted GPA across all results.
func CumulativeGPA(results []model.Result) float64 {
	units, points := 0, 0
	for _, res := range results {
		units += res.CourseUnits
		points += res.GradePoint * res.CourseUnits
	}
	if units == 0 {
		return 0
	}
	return round2(float64(points) / float64(units))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
