package models

// Student represents a student enrolled at the university
type Student struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	DateOfBirth *int64 `db:"date_of_birth" json:"dateOfBirth"` // epoch ms
}
