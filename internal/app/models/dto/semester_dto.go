package dto

import "github.com/yigit/registrar/internal/pkg/helpers"

// SemesterDTO represents semester data on the wire. SemesterID carries the
// semester code, EntryID the surrogate id.
type SemesterDTO struct {
	EntryID           int64        `json:"entryId" example:"1"`
	SemesterID        string       `json:"semesterId" validate:"required,max=7,semester_code" example:"2031F"`
	SemesterName      string       `json:"semesterName" validate:"required,max=30,semester_name" example:"Fall (2031)"`
	SemesterYear      *int         `json:"semesterYear" validate:"required" example:"2031"`
	SemesterStartTime helpers.Date `json:"semesterStartTime" validate:"required,future" swaggertype:"string" example:"2031-09-01"`
	SemesterEndTime   helpers.Date `json:"semesterEndTime" validate:"required,future" swaggertype:"string" example:"2031-12-20"`
}
