// Package newsapi declares the client of the external news backend. The
// backend owns authentication, persistence and ranking; this package only
// describes the calls the front-end makes.
//
// Calls that act on behalf of a visitor read the bearer token from the
// context, see WithToken.
//
//go:generate mockgen -package mocknewsapi -source=interface.go -destination=mock/mocknewsapi.go *
package newsapi

import (
	"context"
	"newsroom/pkg/domain"
)

type AuthClient interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, credentials domain.Credentials) (string, error)
	Register(ctx context.Context, registration domain.Registration) error
	ChangePassword(ctx context.Context, change domain.PasswordChange) error
	ActivateAccount(ctx context.Context, token string) error
	ResendActivation(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, reset domain.PasswordReset) error

	// ValidateJournalistActivation checks an invitation token before the
	// activation form is shown.
	ValidateJournalistActivation(ctx context.Context, token string) error
	ActivateJournalist(ctx context.Context, activation domain.JournalistActivation) error
	// RegisterJournalist invites a journalist. Admin only.
	RegisterJournalist(ctx context.Context, registration domain.Registration) error
}

type ArticleClient interface {
	TrendingArticles(ctx context.Context, page domain.PageRequest) (*domain.ArticlePage, error)
	LatestArticles(ctx context.Context, page domain.PageRequest) (*domain.ArticlePage, error)
	CategoryArticles(
		ctx context.Context, id domain.CategoryID, listType domain.ListType, page domain.PageRequest,
	) (*domain.ArticlePage, error)
	SearchArticles(ctx context.Context, query string, page domain.PageRequest) (*domain.ArticlePage, error)
	// JournalistArticles lists the signed-in journalist's own articles. A nil
	// status lists every status.
	JournalistArticles(
		ctx context.Context, status *domain.ArticleStatus, page domain.PageRequest,
	) (*domain.ArticlePage, error)

	Article(ctx context.Context, id domain.ArticleID) (*domain.Article, error)
	CreateArticle(ctx context.Context, input domain.ArticleInput) (domain.ArticleID, error)
	UpdateArticle(ctx context.Context, id domain.ArticleID, input domain.ArticleInput) error
	DeleteArticle(ctx context.Context, id domain.ArticleID) error
	PublishArticle(ctx context.Context, id domain.ArticleID) error

	LikeArticle(ctx context.Context, id domain.ArticleID) error
	UnlikeArticle(ctx context.Context, id domain.ArticleID) error
}

type CategoryClient interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Category(ctx context.Context, id domain.CategoryID) (*domain.Category, error)
}

type CommentClient interface {
	ArticleComments(ctx context.Context, id domain.ArticleID) ([]domain.Comment, error)
	CreateComment(ctx context.Context, input domain.CommentInput) error
	DeleteComment(ctx context.Context, id domain.CommentID) error
	LikeComment(ctx context.Context, id domain.CommentID) error
	UnlikeComment(ctx context.Context, id domain.CommentID) error
}

type FileClient interface {
	// PresignedURL asks the backend for a storage write URL for a file with
	// the given extension.
	PresignedURL(ctx context.Context, extension string) (*domain.PresignedUpload, error)
}

type Client interface {
	AuthClient
	ArticleClient
	CategoryClient
	CommentClient
	FileClient
}
