// Package response defines the HTTP response rendering for the API.
//
// Every error, whatever its origin, leaves the service as a single
// `{"message": <string>}` body with the mapped status code. Success
// responses carry the resource payload directly.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photoboard/src/core/domain"
)

// Error is the uniform error response body.
type Error struct {
	Message string `json:"message"`
}

// internalMessage is the only text an unclassified failure may surface.
const internalMessage = "something went wrong on the server"

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Error{Message: message})
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Error{Message: message})
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Error{Message: message})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Error{Message: message})
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Error{Message: message})
}

// InternalError sends a 500 response with a generic message.
// The underlying cause is never exposed.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Error{Message: internalMessage})
}

// FromDomainError renders a classified error with its mapped status.
// This is the terminal stage: anything that is not a recognized domain
// error kind falls through to InternalError.
func FromDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		NotFound(c, messageOf(err, "resource not found"))
	case domain.IsValidationError(err):
		BadRequest(c, messageOf(err, "invalid data supplied"))
	case domain.IsConflict(err):
		Conflict(c, messageOf(err, "conflict with existing resource"))
	case domain.IsForbidden(err):
		Forbidden(c, messageOf(err, "forbidden"))
	case domain.IsUnauthorized(err):
		Unauthorized(c, messageOf(err, "authorization required"))
	default:
		InternalError(c)
	}
}

// messageOf extracts the client-safe message from a domain error,
// falling back to the kind's default wording.
func messageOf(err error, fallback string) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return fallback
}
