package job

import "errors"

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrNoFieldsToSet = errors.New("no valid fields to update")
	ErrInvalidStatus = errors.New("invalid job status")
)
