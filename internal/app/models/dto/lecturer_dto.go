package dto

import "github.com/yigit/registrar/internal/pkg/helpers"

// LecturerDTO represents lecturer data on the wire
type LecturerDTO struct {
	LecturerID          int64        `json:"lecturerId" example:"1"`
	LecturerName        string       `json:"lecturerName" validate:"required,max=45,person_name" example:"Ada Lovelace"`
	DateOfBirth         helpers.Date `json:"dateOfBirth" validate:"omitempty,past" swaggertype:"string" example:"1975-12-10"`
	NumericAcademicRank *int         `json:"numericAcademicRank" validate:"required" example:"1"`
}
