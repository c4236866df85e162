// Package response holds the JSON envelope helpers shared by all handlers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes surfaced in the `error` field.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeConflict           = "CONFLICT"
	CodeInternal           = "INTERNAL_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
)

// Pagination metadata returned alongside paginated lists.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type pagedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// OK sends a 200 response with the given body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message sends a 200 response with a plain {message} body.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Paged sends a paginated list response.
func Paged(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, pagedResponse{Data: data, Pagination: pagination})
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 validation error; the message is surfaced verbatim.
func BadRequest(c *gin.Context, message string) {
	BadRequestCode(c, CodeValidationError, message)
}

// BadRequestCode sends a 400 error with a specific code.
func BadRequestCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": code, "message": message})
}

// Unauthorized sends a 401 error with a specific code.
func Unauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code, "message": message})
}

// Forbidden sends a 403 error.
func Forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": CodeForbidden, "message": message})
}

// NotFound sends a 404 error.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": CodeNotFound, "message": message})
}

// MethodNotAllowed sends a 405 error.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "METHOD_NOT_ALLOWED", "message": "method not allowed"})
}

// Conflict sends a 409 error.
func Conflict(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": CodeConflict, "message": message})
}

// InternalError sends a 500 error with a generic message; the underlying
// error is never leaked to the caller.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": CodeInternal, "message": "internal server error"})
}
