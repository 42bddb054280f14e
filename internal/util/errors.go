package util

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateIdentifier = errors.New("identifier already registered")
	ErrRoleMismatch        = errors.New("account role does not match the requested role")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrLevelNotFound       = errors.New("level not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrInvalidGroupName    = errors.New("group name must not be empty")
	ErrInvalidGrade        = errors.New("grade must be an integer between 1 and 11")
	ErrInvalidName         = errors.New("name must not be empty")
	ErrInvalidResult       = errors.New("result does not match the level definition")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrUnsupportedAvatar   = errors.New("avatar must be a png, jpeg or webp image")
)
