package user

import "errors"

// ErrAlreadyExists is returned by repositories on a duplicate username or email.
var ErrAlreadyExists = errors.New("user already exists")
