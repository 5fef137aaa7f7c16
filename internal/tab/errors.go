package tab

import "errors"

// User-facing conditions. None are fatal; callers branch with errors.Is and
// translate to a message.
var (
	ErrEmptyCart              = errors.New("cart is empty")
	ErrOrderNotFound          = errors.New("order not found")
	ErrCancellationNotAllowed = errors.New("order can no longer be cancelled")
)
