package models

// Semester is a teaching period identified by its short code
type Semester struct {
	ID        int64  `db:"id" json:"id"`
	Code      string `db:"code" json:"code"`
	Name      string `db:"name" json:"name"`
	Year      int    `db:"year" json:"year"`
	StartTime int64  `db:"start_time" json:"startTime"` // epoch ms
	EndTime   int64  `db:"end_time" json:"endTime"`     // epoch ms
}

// IsConsistent reports whether the semester starts strictly before it ends
func (s Semester) IsConsistent() bool {
	return s.StartTime < s.EndTime
}
