package app

import "errors"

// ErrMountTargetNotFound is returned by Mount and MountSelector when the
// target resolves to nothing.
var ErrMountTargetNotFound = errors.New("app: mount target not found")
