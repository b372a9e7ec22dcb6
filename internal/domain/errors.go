package domain

import "errors"

var (
	ErrTransport       = errors.New("transport failure")
	ErrUpstream        = errors.New("upstream LLM failure")
	ErrRateLimited     = errors.New("upstream rate limit exceeded")
	ErrEmptyCompletion = errors.New("empty completion")
	ErrUnparseable     = errors.New("completion did not parse into any names")
	ErrAllModelsFailed = errors.New("all candidate models failed")
)
