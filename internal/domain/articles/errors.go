package articles

import "errors"

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrTitleRequired   = errors.New("article title is required")
	ErrContentRequired = errors.New("article content is required")
)
