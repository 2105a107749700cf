package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStoryID = errors.New("not a story id or npr.org story url")
	ErrStoryNotFound  = errors.New("story not found")
	ErrPostNotFound   = errors.New("post not found")
)

// APIMessageError carries a warning the Story API returned instead of stories.
type APIMessageError struct {
	ID   string
	Text string
}

func (e *APIMessageError) Error() string {
	return fmt.Sprintf("story api returned message %s: %s", e.ID, e.Text)
}

// PushError is the human-readable failure stored against a post whose push
// did not succeed.
type PushError struct {
	PostID int64
	Text   string
}

func (e *PushError) Error() string {
	return e.Text
}
