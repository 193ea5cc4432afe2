package dto

import "github.com/yigit/registrar/internal/pkg/helpers"

// StudentDTO represents student data on the wire
type StudentDTO struct {
	StudentID   int64        `json:"studentId" example:"1"`
	StudentName string       `json:"studentName" validate:"required,max=45,person_name" example:"Alan Turing"`
	DateOfBirth helpers.Date `json:"dateOfBirth" validate:"omitempty,past" swaggertype:"string" example:"2004-06-23"`
}
