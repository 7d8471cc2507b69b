package restapi

import (
	"context"
	"net/http"
	"newsroom/pkg/domain"
)

func (cl *Client) ArticleComments(ctx context.Context, id domain.ArticleID) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	err := cl.do(ctx, call{
		op:     "article_comments",
		method: http.MethodGet,
		path:   "/api/comments/" + id.String(),
	}, decodeJSON(&comments))
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (cl *Client) CreateComment(ctx context.Context, input domain.CommentInput) error {
	return cl.do(ctx, call{
		op:     "create_comment",
		method: http.MethodPost,
		path:   "/api/comments",
		body:   input,
	}, nil)
}

func (cl *Client) DeleteComment(ctx context.Context, id domain.CommentID) error {
	return cl.do(ctx, call{
		op:     "delete_comment",
		method: http.MethodDelete,
		path:   "/api/comments/" + id.String(),
	}, nil)
}

func (cl *Client) LikeComment(ctx context.Context, id domain.CommentID) error {
	return cl.do(ctx, call{
		op:     "like_comment",
		method: http.MethodPost,
		path:   "/api/likes/comment/" + id.String() + "/like",
	}, nil)
}

func (cl *Client) UnlikeComment(ctx context.Context, id domain.CommentID) error {
	return cl.do(ctx, call{
		op:     "unlike_comment",
		method: http.MethodDelete,
		path:   "/api/likes/comment/" + id.String() + "/unlike",
	}, nil)
}
