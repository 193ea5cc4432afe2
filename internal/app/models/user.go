package models

// User is the login account of a student. Each student owns at most one.
type User struct {
	ID        int64  `db:"id" json:"id"`
	Login     string `db:"login" json:"login"`
	Password  string `db:"password" json:"-"`
	IsActive  bool   `db:"is_active" json:"isActive"`
	StudentID int64  `db:"student_id" json:"studentId"`
}
