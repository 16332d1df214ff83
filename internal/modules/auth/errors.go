package auth

import "errors"

var ErrInvalidCredentials = errors.New("auth: invalid credentials")
