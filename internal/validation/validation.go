// Package validation contains the validators used on request and config data.
//
// It is built on go-playground/validator: EmailValidator backs the signup
// controller's email check, and FieldErrors turns struct-tag failures into
// field-level errors the client (or an operator reading logs) can understand.
package validation
