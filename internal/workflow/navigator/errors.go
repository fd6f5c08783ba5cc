package navigator

import "errors"

var ErrInvalidStep = errors.New("operation not allowed at current step")
