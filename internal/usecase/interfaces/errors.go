package interfaces

import "errors"

// ErrConflict is returned by repositories when a write would violate a
// uniqueness constraint (duplicate id, email or student number).
var ErrConflict = errors.New("record already exists")
