package comments_test

import (
	"strings"
	"testing"
	"time"

	"newsroom/internal/comments"
	"newsroom/pkg/domain"
	"newsroom/pkg/serrors"

	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func comment(id int64, parent int64, minutes int) domain.Comment {
	c := domain.Comment{ID: domain.CommentID(id), CreatedAt: base.Add(time.Duration(minutes) * time.Minute)}
	if parent != 0 {
		p := domain.CommentID(parent)
		c.ParentCommentID = &p
	}

	return c
}

func ids(list []domain.Comment) []domain.CommentID {
	out := make([]domain.CommentID, len(list))
	for i, c := range list {
		out[i] = c.ID
	}

	return out
}

func TestOrganize(t *testing.T) {
	list := []domain.Comment{
		comment(1, 0, 0),
		comment(2, 0, 10),
		comment(3, 1, 30),
		comment(4, 1, 5),
		comment(5, 2, 20),
		comment(6, 0, 5),
		comment(7, 99, 1),
	}

	threads := comments.Organize(list)
	require.Len(t, threads, 3)

	require.Equal(t, domain.CommentID(2), threads[0].Comment.ID)
	require.Equal(t, domain.CommentID(6), threads[1].Comment.ID)
	require.Equal(t, domain.CommentID(1), threads[2].Comment.ID)

	require.Equal(t, []domain.CommentID{5}, ids(threads[0].Replies))
	require.Empty(t, threads[1].Replies)
	require.Equal(t, []domain.CommentID{4, 3}, ids(threads[2].Replies))

	require.Equal(t, 6, comments.Count(threads))
}

func TestOrganize_Empty(t *testing.T) {
	require.Empty(t, comments.Organize(nil))
}

func TestReplyParent(t *testing.T) {
	list := []domain.Comment{comment(1, 0, 0), comment(2, 1, 1)}

	p, err := comments.ReplyParent(list, 1)
	require.NoError(t, err)
	require.Equal(t, domain.CommentID(1), p)

	p, err = comments.ReplyParent(list, 2)
	require.NoError(t, err)
	require.Equal(t, domain.CommentID(1), p)

	_, err = comments.ReplyParent(list, 3)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestToggleLike(t *testing.T) {
	c := domain.Comment{LikeCount: 4}

	require.False(t, comments.ToggleLike(&c))
	require.True(t, c.IsLiked)
	require.EqualValues(t, 5, c.LikeCount)

	require.True(t, comments.ToggleLike(&c))
	require.False(t, c.IsLiked)
	require.EqualValues(t, 4, c.LikeCount)

	zero := domain.Comment{IsLiked: true}
	require.True(t, comments.ToggleLike(&zero))
	require.EqualValues(t, 0, zero.LikeCount)
}

func TestValidateContent(t *testing.T) {
	got, err := comments.ValidateContent("  hello  ")
	require.NoError(t, err)
	require.Equal(t, "hello", got)

	_, err = comments.ValidateContent("   ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "Comment cannot be empty", serrors.MessageOf(err, ""))

	_, err = comments.ValidateContent(strings.Repeat("é", comments.MaxLength))
	require.NoError(t, err)

	_, err = comments.ValidateContent(strings.Repeat("a", comments.MaxLength+1))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "Comment cannot be longer than 200 characters", serrors.MessageOf(err, ""))
}

func TestIsOwnerAndFind(t *testing.T) {
	list := []domain.Comment{{ID: 1, UserID: "u1"}, {ID: 2, UserID: "u2"}}

	c, ok := comments.Find(list, 2)
	require.True(t, ok)
	require.True(t, comments.IsOwner(*c, "u2"))
	require.False(t, comments.IsOwner(*c, "u1"))
	require.False(t, comments.IsOwner(domain.Comment{}, ""))

	_, ok = comments.Find(list, 3)
	require.False(t, ok)
}
