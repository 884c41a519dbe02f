package service

import (
	"testing"

	"github.com/campushq/campuscore-backend/internal/model"
)

func TestGradeForScore(t *testing.T) {
	cases := []struct {
		score     float64
		wantGrade model.Grade
		wantPoint int
	}{
		{100, model.GradeA, 5},
		{70, model.GradeA, 5},
		{69.99, model.GradeB, 4},
		{60, model.GradeB, 4},
		{59.5, model.GradeC, 3},
		{50, model.GradeC, 3},
		{49, model.GradeD, 2},
		{45, model.GradeD, 2},
		{44.9, model.GradeE, 1},
		{40, model.GradeE, 1},
		{39.99, model.GradeF, 0},
		{0, model.GradeF, 0},
	}

	for _, tc := range cases {
		grade, point := GradeForScore(tc.score)
		if grade != tc.wantGrade || point != tc.wantPoint {
			t.Errorf("GradeForScore(%v) = (%s, %d), want (%s, %d)",
				tc.score, grade, point, tc.wantGrade, tc.wantPoint)
		}
	}
}

func TestSummarize(t *testing.T) {
	results := []model.Result{
		{Session: "2025/2026", Semester: model.SemesterFirst, CourseUnits: 3, GradePoint: 5},
		{Session: "2025/2026", Semester: model.SemesterFirst, CourseUnits: 2, GradePoint: 3},
		{Session: "2025/2026", Semester: model.SemesterSecond, CourseUnits: 4, GradePoint: 4},
	}

	summaries := Summarize(results)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	first := summaries[0]
	if first.Session != "2025/2026" || first.Semester != model.SemesterFirst {
		t.Errorf("unexpected first summary key: %s %s", first.Session, first.Semester)
	}
	if first.TotalUnits != 5 || first.TotalPoints != 21 || first.CourseCount != 2 {
		t.Errorf("first summary totals = (%d units, %d points, %d courses)",
			first.TotalUnits, first.TotalPoints, first.CourseCount)
	}
	// 21 points / 5 units = 4.2
	if first.GPA != 4.2 {
		t.Errorf("first GPA = %v, want 4.2", first.GPA)
	}

	second := summaries[1]
	if second.GPA != 4.0 {
		t.Errorf("second GPA = %v, want 4.0", second.GPA)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); len(got) != 0 {
		t.Errorf("expected no summaries for no results, got %d", len(got))
	}
}

func TestCumulativeGPA(t *testing.T) {
	results := []model.Result{
		{CourseUnits: 3, GradePoint: 5},
		{CourseUnits: 2, GradePoint: 3},
		{CourseUnits: 4, GradePoint: 4},
	}
	// (15 + 6 + 16) / 9 = 4.111... -> 4.11
	if got := CumulativeGPA(results); got != 4.11 {
		t.Errorf("CumulativeGPA = %v, want 4.11", got)
	}

	if got := CumulativeGPA(nil); got != 0 {
		t.Errorf("CumulativeGPA(nil) = %v, want 0", got)
	}
}
