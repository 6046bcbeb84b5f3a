package models

// Enrollment links one Client to one Program with a server-assigned date.
// The same client may enroll in the same program more than once; each row is
// an independent piece of enrollment history.
type Enrollment struct {
	ID             int64  `db:"id" json:"id"`
	ClientID       int64  `db:"client_id" json:"client_id"`
	ProgramID      int64  `db:"program_id" json:"program_id"`
	EnrollmentDate Date   `db:"enrollment_date" json:"enrollment_date"`
	Notes          string `db:"notes" json:"notes"`
}

// EnrollmentDetail enriches Enrollment with program info.
type EnrollmentDetail struct {
	Enrollment
	ProgramName string `db:"program_name" json:"program_name"`
}
