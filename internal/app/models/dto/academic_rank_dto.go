package dto

// AcademicRankDTO represents academic rank data on the wire
type AcademicRankDTO struct {
	RankID      int64  `json:"rankId" example:"1"`
	NumericRank *int   `json:"numericRank" validate:"required" example:"1"`
	RankName    string `json:"rankName" validate:"required,max=45,alphanum_space" example:"Professor"`
}
