package capture

import "errors"

var ErrEmptyBlob = errors.New("empty media blob")
