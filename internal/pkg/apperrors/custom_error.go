package apperrors

// CustomError carries a sentinel error plus a human readable message so that
// handlers can match with errors.Is while still surfacing detail.
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *CustomError) Unwrap() error {
	return e.Err
}
