package errors

import (
	"net/http"
	"time"

	"pedigree/api/models/dtos"
)

/*
	Utility functions to facillitate returning error responses to HTTP clients
*/

func createSimpleError(code int, message string) dtos.GeneralErrorResponseDto {
	return dtos.GeneralErrorResponseDto{
		Code:      code,
		Message:   http.StatusText(code),
		Timestamp: time.Now(),
		Errors: []dtos.GeneralError{
			{
				Message: message,
			},
		},
	}
}

func CreateSimpleBadRequest(message string) dtos.GeneralErrorResponseDto {
	return createSimpleError(http.StatusBadRequest, message)
}
func CreateSimpleUnauthorized(message string) dtos.GeneralErrorResponseDto {
	return createSimpleError(http.StatusUnauthorized, message)
}
func CreateSimpleNotFound(message string) dtos.GeneralErrorResponseDto {
	return createSimpleError(http.StatusNotFound, message)
}
func CreateSimpleInternalServerError(message string) dtos.GeneralErrorResponseDto {
	return createSimpleError(http.StatusInternalServerError, message)
}
