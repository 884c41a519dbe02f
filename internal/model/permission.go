package model

// Permission represents a string code for a specific system action.
type Permission string

const (
	// PermissionStudentsRead allows viewing student lists and details.
	PermissionStudentsRead Permission = "students:read"

	// PermissionStudentsWrite allows creating, updating, and deleting students.
	PermissionStudentsWrite Permission = "students:write"

	// PermissionStudentsResetSession allows resetting a student's active session.
	PermissionStudentsResetSession Permission = "students:reset_session"

	// PermissionStaffRead allows viewing staff lists and details.
	PermissionStaffRead Permission = "staff:read"

	// PermissionStaffWrite allows creating, updating, and deleting staff accounts.
	PermissionStaffWrite Permission = "staff:write"

	// PermissionRolesRead allows viewing roles and permissions.
	PermissionRolesRead Permission = "roles:read"

	// PermissionRolesWrite allows creating, updating, and deleting roles.
	PermissionRolesWrite Permission = "roles:write"

	// PermissionAcademicsRead allows viewing faculties, departments, and courses.
	PermissionAcademicsRead Permission = "academics:read"

	// PermissionAcademicsWrite allows managing faculties, departments, and courses.
	PermissionAcademicsWrite Permission = "academics:write"

	// PermissionEnrollmentsRead allows viewing enrollments.
	PermissionEnrollmentsRead Permission = "enrollments:read"

	// PermissionEnrollmentsWrite allows creating and updating enrollments.
	PermissionEnrollmentsWrite Permission = "enrollments:write"

	// PermissionResultsRead allows viewing results.
	PermissionResultsRead Permission = "results:read"

	// PermissionResultsWrite allows entering and amending results.
	PermissionResultsWrite Permission = "results:write"

	// PermissionPaymentsRead allows viewing payment records.
	PermissionPaymentsRead Permission = "payments:read"

	// PermissionPaymentsConfirm allows confirming or failing pending payments.
	PermissionPaymentsConfirm Permission = "payments:confirm"

	// PermissionHostelsRead allows viewing hostels, rooms, and applications.
	PermissionHostelsRead Permission = "hostels:read"

	// PermissionHostelsWrite allows managing hostels and rooms.
	PermissionHostelsWrite Permission = "hostels:write"

	// PermissionHostelsAllocate allows allocating rooms and rejecting applications.
	PermissionHostelsAllocate Permission = "hostels:allocate"

	// PermissionQuizzesRead allows viewing quizzes and attempts.
	PermissionQuizzesRead Permission = "quizzes:read"

	// PermissionQuizzesWrite allows creating, publishing, and closing quizzes.
	PermissionQuizzesWrite Permission = "quizzes:write"

	// PermissionClearanceRead allows viewing clearance records.
	PermissionClearanceRead Permission = "clearance:read"

	// PermissionClearanceAct allows approving or rejecting clearance items.
	PermissionClearanceAct Permission = "clearance:act"

	// PermissionScholarshipsRead allows viewing scholarships and applications.
	PermissionScholarshipsRead Permission = "scholarships:read"

	// PermissionScholarshipsWrite allows managing scholarships and awarding them.
	PermissionScholarshipsWrite Permission = "scholarships:write"

	// PermissionReportsRead allows viewing and exporting bursary reports.
	PermissionReportsRead Permission = "reports:read"

	// PermissionNotificationsBroadcast allows broadcasting notifications.
	PermissionNotificationsBroadcast Permission = "notifications:broadcast"
)

// AllPermissions is a slice of all available permissions.
var AllPermissions = []Permission{
	PermissionStudentsRead,
	PermissionStudentsWrite,
	PermissionStudentsResetSession,
	PermissionStaffRead,
	PermissionStaffWrite,
	PermissionRolesRead,
	PermissionRolesWrite,
	PermissionAcademicsRead,
	PermissionAcademicsWrite,
	PermissionEnrollmentsRead,
	PermissionEnrollmentsWrite,
	PermissionResultsRead,
	PermissionResultsWrite,
	PermissionPaymentsRead,
	PermissionPaymentsConfirm,
	PermissionHostelsRead,
	PermissionHostelsWrite,
	PermissionHostelsAllocate,
	PermissionQuizzesRead,
	PermissionQuizzesWrite,
	PermissionClearanceRead,
	PermissionClearanceAct,
	PermissionScholarshipsRead,
	PermissionScholarshipsWrite,
	PermissionReportsRead,
	PermissionNotificationsBroadcast,
}
