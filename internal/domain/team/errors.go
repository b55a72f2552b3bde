package team

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyContent = errors.New("post content cannot be empty")
	ErrNotPostOwner = errors.New("only the author can delete a post")
)
