package listings

import "errors"

var ErrItemNotFound = errors.New("listing not found")
