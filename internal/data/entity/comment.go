package entity

type Comment struct {
	Base
	ReviewID int64  `db:"review_id"`
	Content  string `db:"content"`
	Author   string `db:"author"`
	Password string `db:"password"`
}
