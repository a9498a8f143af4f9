package pkg

import "fmt"

// AppError is the error shape returned by the HTTP boundary.
//
// Handlers map use case errors into an AppError and render it through
// ToHTTPError so every failure reaches the caller inside the same envelope.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// ErrorBody is the error part of the result envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the uniform result returned by every endpoint.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithMessage returns a copy carrying a more specific message.
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() Envelope {
	return Envelope{
		Success: false,
		Error:   &ErrorBody{Code: e.Code, Message: e.Message},
	}
}

// Success wraps a payload into a successful envelope.
func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
