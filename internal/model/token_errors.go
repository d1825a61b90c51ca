package model

import "errors"

var (
	ErrTokenMissing = errors.New("identity token missing")
	ErrTokenInvalid = errors.New("identity token invalid")
)
