// Package comments arranges an article's flat comment list into one-level
// threads and holds the small rules around replying and liking.
package comments

import (
	"newsroom/pkg/domain"
	"newsroom/pkg/serrors"
	"sort"
	"strings"
	"unicode/utf8"
)

// MaxLength is the longest comment the editor accepts, in characters.
const MaxLength = 200

// Thread is a top-level comment and its replies.
type Thread struct {
	Comment domain.Comment
	Replies []domain.Comment
}

// Organize groups comments in a single pass. Top-level comments come newest
// first; replies are attached to their parent oldest first. Replies whose
// parent is not in the list are dropped.
func Organize(list []domain.Comment) []Thread {
	var parents []domain.Comment
	children := make(map[domain.CommentID][]domain.Comment)
	for _, c := range list {
		if c.ParentCommentID == nil {
			parents = append(parents, c)

			continue
		}
		children[*c.ParentCommentID] = append(children[*c.ParentCommentID], c)
	}

	sort.SliceStable(parents, func(i, j int) bool {
		return parents[i].CreatedAt.After(parents[j].CreatedAt)
	})

	threads := make([]Thread, 0, len(parents))
	for _, p := range parents {
		replies := children[p.ID]
		sort.SliceStable(replies, func(i, j int) bool {
			return replies[i].CreatedAt.Before(replies[j].CreatedAt)
		})
		threads = append(threads, Thread{Comment: p, Replies: replies})
	}

	return threads
}

// Count returns the number of comments that Organize renders.
func Count(threads []Thread) int {
	n := 0
	for _, t := range threads {
		n += 1 + len(t.Replies)
	}

	return n
}

// ReplyParent returns the comment a reply to target must attach to. Replying
// to a reply attaches to that reply's parent, so threads stay one level deep.
func ReplyParent(list []domain.Comment, target domain.CommentID) (domain.CommentID, error) {
	for _, c := range list {
		if c.ID != target {
			continue
		}
		if c.ParentCommentID != nil {
			return *c.ParentCommentID, nil
		}

		return c.ID, nil
	}

	return 0, serrors.With(serrors.ErrNotFound, "comment %d not found", target)
}

// ToggleLike flips the like state of c and moves its count by one. The count
// never goes below zero. It returns whether c was liked before the toggle,
// which decides between the like and unlike endpoints.
func ToggleLike(c *domain.Comment) (wasLiked bool) {
	wasLiked = c.IsLiked
	c.IsLiked = !wasLiked
	if wasLiked {
		if c.LikeCount > 0 {
			c.LikeCount--
		}
	} else {
		c.LikeCount++
	}

	return wasLiked
}

// Find returns the comment with id, if present.
func Find(list []domain.Comment, id domain.CommentID) (*domain.Comment, bool) {
	for i := range list {
		if list[i].ID == id {
			return &list[i], true
		}
	}

	return nil, false
}

// ValidateContent trims content and checks it is non-empty and at most
// MaxLength characters.
func ValidateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", serrors.With(serrors.ErrBadRequest, "Comment cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxLength {
		return "", serrors.With(serrors.ErrBadRequest, "Comment cannot be longer than %d characters", MaxLength)
	}

	return content, nil
}

// IsOwner reports whether the visitor with userID wrote c.
func IsOwner(c domain.Comment, userID domain.UserID) bool {
	return userID != "" && c.UserID == userID
}
