package forms

import (
	"newsroom/internal/comments"
	"newsroom/pkg/domain"
	"newsroom/pkg/serrors"

	"github.com/go-playground/validator/v10"
)

// Form actions of the article editor.
const (
	ActionDraft   = "draft"
	ActionPublish = "publish"
	ActionPreview = "preview"
)

type Article struct {
	Title       string `form:"title" validate:"required,max=150"`
	Description string `form:"description" validate:"required,max=250"`
	Content     string `form:"content" validate:"required"`
	CategoryID  int64  `form:"categoryID" validate:"required"`
	ImageURL    string `form:"imageURL" validate:"required_without=Thumbnail"`
	Action      string `form:"action"`
	// Thumbnail is set when a thumbnail file came with the submission.
	Thumbnail bool `form:"-"`
}

// Input builds the backend payload. Drafts stay drafts unless the publish
// action was chosen.
func (f Article) Input() domain.ArticleInput {
	status := domain.ArticleDraft
	if f.Action == ActionPublish {
		status = domain.ArticlePublished
	}

	return domain.ArticleInput{
		Title:       f.Title,
		Description: f.Description,
		Content:     f.Content,
		CategoryID:  domain.CategoryID(f.CategoryID),
		ImageURL:    f.ImageURL,
		Status:      status,
	}
}

type Comment struct {
	Content  string `form:"content,raw"`
	ParentID int64  `form:"parentID"`
}

const commentTag = "comment"

// validateComment defers to the comment rules so that the form and the
// thread logic report the same messages.
func validateComment(sl validator.StructLevel) {
	c, _ := sl.Current().Interface().(Comment)
	if _, err := comments.ValidateContent(c.Content); err != nil {
		sl.ReportError(c.Content, "content", "Content", commentTag, serrors.MessageOf(err, err.Error()))
	}
}

// Input builds the backend payload for a comment on article.
func (f Comment) Input(article domain.ArticleID) (domain.CommentInput, error) {
	content, err := comments.ValidateContent(f.Content)
	if err != nil {
		return domain.CommentInput{}, err
	}

	in := domain.CommentInput{ArticleID: article, Content: content}
	if f.ParentID > 0 {
		parent := domain.CommentID(f.ParentID)
		in.ParentCommentID = &parent
	}

	return in, nil
}
