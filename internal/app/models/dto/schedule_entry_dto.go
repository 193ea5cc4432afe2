package dto

import "github.com/yigit/registrar/internal/pkg/helpers"

// ScheduleEntryDTO represents a class schedule entry on the wire
type ScheduleEntryDTO struct {
	EntryID    int64            `json:"entryId" example:"1"`
	StudentID  *int64           `json:"studentId" validate:"required" example:"1"`
	LecturerID *int64           `json:"lecturerId" validate:"required" example:"1"`
	CourseID   *int64           `json:"courseId" validate:"required" example:"1"`
	Time       helpers.DateTime `json:"time" validate:"required,future" swaggertype:"string" example:"2031-09-02 08:30:00"`
	Location   string           `json:"location" validate:"required,max=45,location" example:"Room A1"`
	SemesterID string           `json:"semesterId" validate:"required,max=7,semester_code" example:"2031F"`
}
