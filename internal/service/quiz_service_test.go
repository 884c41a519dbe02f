package service

import "testing"

func TestGradeAttempt(t *testing.T) {
	key := map[string]string{
		"q1": "A",
		"q2": "C",
		"q3": "B",
		"q4": "D",
	}

	cases := []struct {
		name    string
		answers map[string]string
		want    float64
	}{
		{
			name:    "all correct",
			answers: map[string]string{"q1": "A", "q2": "C", "q3": "B", "q4": "D"},
			want:    100,
		},
		{
			name:    "half correct",
			answers: map[string]string{"q1": "A", "q2": "C", "q3": "A", "q4": "A"},
			want:    50,
		},
		{
			name:    "unanswered questions score zero",
			answers: map[string]string{"q1": "A"},
			want:    25,
		},
		{
			name:    "none correct",
			answers: map[string]string{"q1": "B", "q2": "A", "q3": "C", "q4": "B"},
			want:    0,
		},
		{
			name:    "empty submission",
			answers: map[string]string{},
			want:    0,
		},
		{
			name:    "stray answers are ignored",
			answers: map[string]string{"q1": "A", "q99": "A"},
			want:    25,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GradeAttempt(key, tc.answers); got != tc.want {
				t.Errorf("GradeAttempt = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGradeAttemptEmptyKey(t *testing.T) {
	if got := GradeAttempt(nil, map[string]string{"q1": "A"}); got != 0 {
		t.Errorf("GradeAttempt with empty key = %v, want 0", got)
	}
}
