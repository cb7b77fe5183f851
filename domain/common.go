package domain

import (
	"errors"
)

var (
	MessageUnauthorized      = "unauthorized access"
	MessageForbidden         = "forbidden access"
	MessageFailedBodyRequest = "failed to process request body"

	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrParseUUID     = errors.New("failed to parse UUID")
)
