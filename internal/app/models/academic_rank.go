package models

// AcademicRank is a named academic rank identified by its unique numeric rank
type AcademicRank struct {
	ID          int64  `db:"id" json:"id"`
	NumericRank int    `db:"numeric_rank" json:"numericRank"`
	RankName    string `db:"rank_name" json:"rankName"`
}
