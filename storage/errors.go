package storage

import "errors"

var ErrProfileNotFound = errors.New("profile not found in storage")
var ErrProfileAlreadyExists = errors.New("profile already exists")
