package entity

type Review struct {
	Base
	BookTitle  string `db:"book_title"`
	Title      string `db:"title"`
	Content    string `db:"content"`
	StarRating int    `db:"star_rating"` // 1-10
	Author     string `db:"author"`
	Password   string `db:"password"`
}
