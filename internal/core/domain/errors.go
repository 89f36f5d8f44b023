package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountInactive = errors.New("account is inactive")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrRoleNotFound = errors.New("role not found")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyAttempts = errors.New("too many login attempts")

var ErrUsernameTooShort = errors.New("username must be at least 3 characters")
var ErrPasswordRequired = errors.New("password must not be blank")
var ErrInvalidEmail = errors.New("email address is not valid")
var ErrInvalidRoleName = errors.New("role name must be between 2 and 50 characters")
var ErrRoleIDRequired = errors.New("role id must not be empty")
