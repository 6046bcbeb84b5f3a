package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/amara-health/his-api/pkg/errors"
)

// ErrorBody is the failure response contract.
type ErrorBody struct {
	Error *appErrors.Error `json:"error"`
}

// JSON sends a success response writing the payload as the body.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, payload)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusCreated, payload)
}

// Error sends an error response converting the error to the common structure.
// The wrapped cause is never serialised, so driver and validator internals
// stay out of responses.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, ErrorBody{Error: appErr})
}

// Text sends a plain text response.
func Text(c *gin.Context, status int, body string) {
	c.String(status, body)
}
