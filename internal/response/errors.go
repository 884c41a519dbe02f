package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// Authentication
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionActive      ErrCode = "SESSION_ALREADY_ACTIVE"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// Authorization
	ErrForbidden         ErrCode = "FORBIDDEN"
	ErrPermissionDenied  ErrCode = "PERMISSION_DENIED"
	ErrStudentAccessOnly ErrCode = "STUDENT_ACCESS_ONLY"
	ErrStaffAccessOnly   ErrCode = "STAFF_ACCESS_ONLY"

	// Validation
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// Resources
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrDependencyExists ErrCode = "DEPENDENCY_EXISTS"
	ErrActionForbidden  ErrCode = "ACTION_FORBIDDEN"

	// Enrollment and results
	ErrAlreadyEnrolled      ErrCode = "ALREADY_ENROLLED"
	ErrEnrollmentClosed     ErrCode = "ENROLLMENT_CLOSED"
	ErrResultAlreadyEntered ErrCode = "RESULT_ALREADY_ENTERED"

	// Payments
	ErrPaymentFinalized ErrCode = "PAYMENT_FINALIZED"

	// Hostels
	ErrRoomFull             ErrCode = "ROOM_FULL"
	ErrHostelGenderMismatch ErrCode = "HOSTEL_GENDER_MISMATCH"
	ErrApplicationDecided   ErrCode = "APPLICATION_ALREADY_DECIDED"

	// Quizzes
	ErrQuizNotPublished  ErrCode = "QUIZ_NOT_PUBLISHED"
	ErrQuizNotDraft      ErrCode = "QUIZ_NOT_DRAFT"
	ErrAttemptSubmitted  ErrCode = "ATTEMPT_ALREADY_SUBMITTED"
	ErrNoQuestions       ErrCode = "NO_QUESTIONS"
	ErrNotEnrolledInQuiz ErrCode = "NOT_ENROLLED_FOR_QUIZ"
	ErrQuizTimeUp        ErrCode = "QUIZ_TIME_UP"

	// Clearance
	ErrClearanceDecided  ErrCode = "CLEARANCE_ITEM_DECIDED"
	ErrWrongDepartment   ErrCode = "WRONG_CLEARANCE_DEPARTMENT"
	ErrClearanceNotFound ErrCode = "CLEARANCE_NOT_FOUND"

	// Scholarships
	ErrScholarshipClosed ErrCode = "SCHOLARSHIP_CLOSED"
	ErrDeadlinePassed    ErrCode = "DEADLINE_PASSED"

	// Rate limiting
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// Server
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Matric number/email or password is incorrect."
	case ErrSessionActive:
		return "You are already logged in on another device."
	case ErrSessionInvalidated:
		return "Your session has ended. Please log in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."
	case ErrTokenExpired:
		return "The authentication token has expired."

	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrPermissionDenied:
		return "Permission denied."
	case ErrStudentAccessOnly:
		return "This resource is restricted to students."
	case ErrStaffAccessOnly:
		return "This resource is restricted to staff."

	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "The ID format is invalid."
	case ErrInvalidPayload:
		return "The request payload is invalid."

	case ErrNotFound:
		return "The resource was not found."
	case ErrConflict:
		return "The resource already exists."
	case ErrDependencyExists:
		return "The record cannot be deleted because other records still reference it."
	case ErrActionForbidden:
		return "This action is not allowed."

	case ErrAlreadyEnrolled:
		return "The student is already enrolled in this course for the session."
	case ErrEnrollmentClosed:
		return "This enrollment can no longer be changed."
	case ErrResultAlreadyEntered:
		return "A result has already been recorded for this enrollment."

	case ErrPaymentFinalized:
		return "This payment has already been confirmed or failed."

	case ErrRoomFull:
		return "The selected room is already at full capacity."
	case ErrHostelGenderMismatch:
		return "This hostel does not admit students of your gender."
	case ErrApplicationDecided:
		return "This hostel application has already been decided."

	case ErrQuizNotPublished:
		return "This quiz is not open for attempts."
	case ErrQuizNotDraft:
		return "This quiz is not in DRAFT status."
	case ErrAttemptSubmitted:
		return "You have already submitted an attempt for this quiz."
	case ErrNoQuestions:
		return "This quiz has no questions."
	case ErrNotEnrolledInQuiz:
		return "You are not enrolled in the course this quiz belongs to."
	case ErrQuizTimeUp:
		return "Time is up for this quiz."

	case ErrClearanceDecided:
		return "This clearance item has already been decided."
	case ErrWrongDepartment:
		return "You cannot act on clearance items outside your department."
	case ErrClearanceNotFound:
		return "No clearance record exists for this student and session."

	case ErrScholarshipClosed:
		return "This scholarship is not accepting applications."
	case ErrDeadlinePassed:
		return "The application deadline has passed."

	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
