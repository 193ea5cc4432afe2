package dto

// CourseDTO represents course data on the wire
type CourseDTO struct {
	CourseID          int64   `json:"courseId" example:"1"`
	CourseTitle       string  `json:"courseTitle" validate:"required,max=45,alphanum_space" example:"Linear Algebra"`
	CourseDescription *string `json:"courseDescription" validate:"omitempty,max=45" example:"Vectors, matrices and linear maps"`
}
