package models

// Client is a person registered in the system. Records are write-once.
type Client struct {
	ID          int64  `db:"id" json:"id"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name"`
	DateOfBirth Date   `db:"date_of_birth" json:"dob"`
	ContactInfo string `db:"contact_info" json:"contact_info"`
}

// ClientSearchResult is the condensed row returned by client search.
type ClientSearchResult struct {
	ID          int64  `db:"id" json:"id"`
	FirstName   string `db:"first_name" json:"-"`
	LastName    string `db:"last_name" json:"-"`
	Name        string `db:"-" json:"name"`
	DateOfBirth Date   `db:"date_of_birth" json:"dob"`
}

// ClientProfile aggregates a client with every program enrollment.
type ClientProfile struct {
	ID          int64               `json:"id"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	DateOfBirth Date                `json:"dob"`
	ContactInfo string              `json:"contact_info"`
	Programs    []ProgramEnrollment `json:"programs"`
}

// ProgramEnrollment renders one enrollment joined to its program inside a
// client profile.
type ProgramEnrollment struct {
	ProgramID      int64  `json:"id"`
	ProgramName    string `json:"name"`
	EnrollmentDate Date   `json:"enrollment_date"`
	Notes          string `json:"notes"`
}
