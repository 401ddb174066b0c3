package api

type Post struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Snippet    string   `json:"snippet,omitempty"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Date       string   `json:"date"`
	Image      string   `json:"image"`
	IsNewest   bool     `json:"isNewest"`
	IsFeatured bool     `json:"isFeatured"`
	IsDeleted  bool     `json:"isDeleted"`
	DeletedAt  string   `json:"deletedAt,omitempty"`
}

type PostProto struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type DateProto struct {
	Date string `json:"date"`
}

type TocEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

type RenderedPost struct {
	Post
	HTML string     `json:"html"`
	Toc  []TocEntry `json:"toc"`
}

type HistoryMonth struct {
	Month string `json:"month"`
	Posts []Post `json:"posts"`
}

type HistoryYear struct {
	Year   string         `json:"year"`
	Months []HistoryMonth `json:"months"`
}
