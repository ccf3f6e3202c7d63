package studio

import "errors"

var (
	ErrNoImage     = errors.New("no source image")
	ErrEmptyPrompt = errors.New("empty prompt")
)
