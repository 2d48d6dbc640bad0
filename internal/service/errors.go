package service

import "errors"

var (
	ErrNoCurrentQuotation = errors.New("no quotation is being edited")
	ErrNotFound           = errors.New("quotation not found")
)
