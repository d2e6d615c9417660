package ownership

import "errors"

// ErrNotFound covers both "does not exist" and "exists but belongs to another
// host". Collapsing the two keeps resource ids unenumerable across hosts.
var ErrNotFound = errors.New("resource not found")
