package models

// Lecturer represents a teaching member of staff
type Lecturer struct {
	ID                  int64  `db:"id" json:"id"`
	Name                string `db:"name" json:"name"`
	DateOfBirth         *int64 `db:"date_of_birth" json:"dateOfBirth"` // epoch ms
	NumericAcademicRank int    `db:"numeric_academic_rank" json:"numericAcademicRank"`
}
