package controllers

import (
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
)

// Controllers holds one record controller per resource
type Controllers struct {
	AcademicRankController  *RecordController[dto.AcademicRankDTO, int64]
	CourseController        *RecordController[dto.CourseDTO, int64]
	LecturerController      *RecordController[dto.LecturerDTO, int64]
	SemesterController      *RecordController[dto.SemesterDTO, string]
	StudentController       *RecordController[dto.StudentDTO, int64]
	UserController          *RecordController[dto.UserDTO, string]
	ScheduleEntryController *RecordController[dto.ScheduleEntryDTO, int64]
}

// NewControllers creates the controllers over the services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AcademicRankController:  NewRecordController(svcs.AcademicRankService, ParseIDKey),
		CourseController:        NewRecordController(svcs.CourseService, ParseIDKey),
		LecturerController:      NewRecordController(svcs.LecturerService, ParseIDKey),
		SemesterController:      NewRecordController(svcs.SemesterService, ParseCodeKey),
		StudentController:       NewRecordController(svcs.StudentService, ParseIDKey),
		UserController:          NewRecordController(svcs.UserService, ParseCodeKey),
		ScheduleEntryController: NewRecordController(svcs.ScheduleEntryService, ParseIDKey),
	}
}
