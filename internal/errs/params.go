package errs

import "fmt"

const (
	// CodeMissingParam marks a required request field that was absent or empty.
	CodeMissingParam = "MISSING_PARAM"

	// CodeInvalidParam marks a present field that failed a semantic check.
	CodeInvalidParam = "INVALID_PARAM"
)

// NewMissingParamError reports that field was absent or empty.
func NewMissingParamError(field string) *HTTPError {
	code := CodeMissingParam
	return NewBadRequestError(
		fmt.Sprintf("Missing param: %s", field),
		true,
		&code,
		[]FieldError{{Field: field, Error: "is required"}},
		nil,
	)
}

// NewInvalidParamError reports that field was present but rejected, e.g. a
// malformed email or a password confirmation that does not match.
func NewInvalidParamError(field string) *HTTPError {
	code := CodeInvalidParam
	return NewBadRequestError(
		fmt.Sprintf("Invalid param: %s", field),
		true,
		&code,
		[]FieldError{{Field: field, Error: "is invalid"}},
		nil,
	)
}
