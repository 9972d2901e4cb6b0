package utils

import "errors"

var (
	ErrorRecordNotFound = errors.New("record not found")
	ErrorDraftNotFound  = errors.New("draft not found")
)
