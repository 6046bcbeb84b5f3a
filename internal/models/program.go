package models

// Program is a named health initiative clients can be enrolled in.
// Programs are write-once: there is no update or delete.
type Program struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}
