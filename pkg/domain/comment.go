package domain

import (
	"strconv"
	"time"
)

type CommentID int64

func (id CommentID) String() string { return strconv.FormatInt(int64(id), 10) }

type Comment struct {
	ID              CommentID  `json:"commentID"`
	ArticleID       ArticleID  `json:"articleID"`
	ParentCommentID *CommentID `json:"parentCommentID"`
	UserID          UserID     `json:"userID"`
	AuthorName      string     `json:"authorName"`
	Content         string     `json:"content"`
	CreatedAt       time.Time  `json:"createdAt"`
	LikeCount       int64      `json:"likeCount"`
	IsLiked         bool       `json:"isLiked"`
}

// IsReply reports whether c answers another comment.
func (c Comment) IsReply() bool { return c.ParentCommentID != nil }

// CommentInput is the body of a comment create request.
type CommentInput struct {
	ArticleID       ArticleID  `json:"articleID"`
	ParentCommentID *CommentID `json:"parentCommentID"`
	Content         string     `json:"content"`
}
