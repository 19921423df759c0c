package results

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrResultNotFound  = errors.New("result_not_found")
	ErrArchiveDisabled = errors.New("archive_disabled")
)
