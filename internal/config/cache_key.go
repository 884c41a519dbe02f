package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// StudentSessionKey returns the cache key holding the active JTI for a student login.
func (r *CacheKeyStruct) StudentSessionKey(studentID int) string {
	return fmt.Sprintf("login:student:%d", studentID)
}

// NotificationChannel returns the Pub/Sub channel live notifications are
// published on for a recipient ("student" or "staff").
func (r *CacheKeyStruct) NotificationChannel(recipientType string, recipientID int) string {
	return fmt.Sprintf("notify:%s:%d", recipientType, recipientID)
}

// UnreadCountKey returns the cache key for a recipient's unread notification count.
func (r *CacheKeyStruct) UnreadCountKey(recipientType string, recipientID int) string {
	return fmt.Sprintf("notify:%s:%d:unread", recipientType, recipientID)
}

// BursaryReportKey returns the cache key for the bursary report of a session.
func (r *CacheKeyStruct) BursaryReportKey(session string) string {
	return fmt.Sprintf("report:bursary:%s", session)
}

// QuizAttemptKey returns the cache key for a student's in-flight quiz answers.
func (r *CacheKeyStruct) QuizAttemptKey(quizID string, studentID int) string {
	return fmt.Sprintf("quiz:%s:student:%d:answers", quizID, studentID)
}

var CacheKey = NewCacheKeyStruct()
