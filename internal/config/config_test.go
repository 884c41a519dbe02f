package config

import (
	"reflect"
	"testing"
)

func TestParseOrigins(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"http://localhost:3000", []string{"http://localhost:3000"}},
		{"http://a.com, http://b.com", []string{"http://a.com", "http://b.com"}},
		{" http://a.com ,, ", []string{"http://a.com"}},
	}

	for _, tc := range cases {
		if got := parseOrigins(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseOrigins(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := getEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt set = %d, want 42", got)
	}
	if got := getEnvInt("TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("getEnvInt missing = %d, want fallback 7", got)
	}
	t.Setenv("TEST_INT_BAD", "not-a-number")
	if got := getEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("getEnvInt invalid = %d, want fallback 7", got)
	}
}

func TestCacheKeys(t *testing.T) {
	if got := CacheKey.StudentSessionKey(9); got != "login:student:9" {
		t.Errorf("StudentSessionKey = %q", got)
	}
	if got := CacheKey.NotificationChannel("STUDENT", 9); got != "notify:STUDENT:9" {
		t.Errorf("NotificationChannel = %q", got)
	}
	if got := CacheKey.BursaryReportKey("2025/2026"); got != "report:bursary:2025/2026" {
		t.Errorf("BursaryReportKey = %q", got)
	}
}
