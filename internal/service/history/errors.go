package history

import "errors"

var ErrQuery = errors.New("delivery history query failed")
