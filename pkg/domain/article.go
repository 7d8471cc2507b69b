package domain

import (
	"strconv"
	"strings"
	"time"
)

type ArticleID int64

func (id ArticleID) String() string { return strconv.FormatInt(int64(id), 10) }

// ArticleStatus is the publication state of an article.
type ArticleStatus int

const (
	ArticleDraft ArticleStatus = iota
	ArticlePublished
)

func (s ArticleStatus) String() string {
	if s == ArticlePublished {
		return "published"
	}

	return "draft"
}

// ListType selects the ordering of a category listing.
type ListType int

const (
	ListLatest ListType = iota
	ListTrending
)

// ParseListType maps the URL segment used by listing pages to a ListType.
func ParseListType(s string) (ListType, bool) {
	switch s {
	case "latest":
		return ListLatest, true
	case "trending":
		return ListTrending, true
	default:
		return 0, false
	}
}

func (l ListType) String() string {
	if l == ListTrending {
		return "trending"
	}

	return "latest"
}

type Article struct {
	ID              ArticleID     `json:"articleID"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Content         string        `json:"content"`
	Slug            string        `json:"slug"`
	ImageURL        string        `json:"imageURL"`
	CategoryID      CategoryID    `json:"categoryID"`
	CategoryName    string        `json:"categoryName"`
	AuthorFirstName string        `json:"authorFirstName"`
	AuthorLastName  string        `json:"authorLastName"`
	Status          ArticleStatus `json:"status"`
	TotalViews      int64         `json:"totalViews"`
	LikeCount       int64         `json:"likeCount"`
	IsLiked         bool          `json:"isLiked"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       *time.Time    `json:"updatedAt,omitempty"`
	PublishedAt     *time.Time    `json:"publishedAt,omitempty"`
}

// AuthorName joins the author's first and last name.
func (a Article) AuthorName() string {
	return strings.TrimSpace(a.AuthorFirstName + " " + a.AuthorLastName)
}

// PathSlug returns the slug used in article URLs, deriving one from the title
// when the backend sent none.
func (a Article) PathSlug() string {
	if a.Slug != "" {
		return a.Slug
	}

	return Slugify(a.Title)
}

// Slugify lower-cases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// ArticlePage is one page of a listing plus the total number of matches.
type ArticlePage struct {
	Items      []Article `json:"items"`
	TotalCount int       `json:"totalCount"`
}

// ArticleInput is the body of article create and update requests.
type ArticleInput struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	CategoryID  CategoryID    `json:"categoryID"`
	ImageURL    string        `json:"imageURL"`
	Status      ArticleStatus `json:"status"`
}

// PageRequest addresses one page of a listing. Page numbers start at 1.
type PageRequest struct {
	Page     int
	PageSize int
}

// UnknownTotal marks an ArticlePage whose backend response carried no total count.
const UnknownTotal = -1
