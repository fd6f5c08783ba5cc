package commit

import "errors"

var (
	ErrMissingInput   = errors.New("awb number and captured media are required")
	ErrCommitInFlight = errors.New("commit already in progress")
	ErrUpload         = errors.New("media upload failed")
	ErrRecord         = errors.New("delivery record insert failed")
)
