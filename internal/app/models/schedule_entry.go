package models

// ScheduleEntry places a student in a lecturer's course at a time and location
type ScheduleEntry struct {
	ID           int64  `db:"id" json:"id"`
	StudentID    int64  `db:"student_id" json:"studentId"`
	LecturerID   int64  `db:"lecturer_id" json:"lecturerId"`
	CourseID     int64  `db:"course_id" json:"courseId"`
	SemesterCode string `db:"semester_code" json:"semesterCode"`
	Time         int64  `db:"time" json:"time"` // epoch ms
	Location     string `db:"location" json:"location"`
}
