package schema

// ContentArticleTable represents the 'content.article' table
type ContentArticleTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Excerpt     string
	Body        string
	CoverURL    string
	IsPublished string
	AuthorID    string
	PublishedAt string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// ContentArticle is the schema definition for content.article
var ContentArticle = ContentArticleTable{
	Table:       "content.article",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Excerpt:     "excerpt",
	Body:        "body",
	CoverURL:    "coverurl",
	IsPublished: "ispublished",
	AuthorID:    "authorid",
	PublishedAt: "publishedat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}
