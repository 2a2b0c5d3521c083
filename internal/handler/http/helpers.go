package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lkohler/citysignal/internal/domain/apperr"
	"github.com/lkohler/citysignal/internal/handler/http/dto"
	appvalidator "github.com/lkohler/citysignal/internal/infrastructure/validator"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// RespondError maps the domain error taxonomy onto HTTP statuses: validation
// 422 with per-field violations, not found 404 and conflict 409 as plain
// text, bad request 400, anything else an opaque 500.
func RespondError(c *gin.Context, err error) {
	var validation *apperr.ValidationError
	var notFound *apperr.NotFoundError
	var conflict *apperr.ConflictError
	var badRequest *apperr.BadRequestError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Errors: validation.Fields})
	case errors.As(err, &notFound):
		c.String(http.StatusNotFound, notFound.Error())
	case errors.As(err, &conflict):
		c.String(http.StatusConflict, conflict.Error())
	case errors.As(err, &badRequest):
		ErrorHandler(c, http.StatusBadRequest, badRequest.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}

// RequireJSON rejects requests whose body does not declare a JSON content
// type, before any binding happens. Returns false when the request was
// rejected.
func RequireJSON(c *gin.Context) bool {
	if c.ContentType() != "application/json" {
		ErrorHandler(c, http.StatusBadRequest, "request body must be application/json")
		return false
	}
	return true
}

// BindJSON binds the JSON request body and translates failures: field
// constraint violations become 422 bodies enumerating each field, type
// mismatches 422 on the offending field, malformed JSON 400. Returns false
// when the request was rejected.
func BindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Errors: appvalidator.Translate(verrs)})
	case errors.As(err, &typeErr):
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Errors: map[string]string{typeErr.Field: "is of invalid type"},
		})
	default:
		ErrorHandler(c, http.StatusBadRequest, "invalid JSON body")
	}
	return false
}

// shouldInclude reports whether the "include" query parameter names the
// given relation.
func shouldInclude(c *gin.Context, relation string) bool {
	for _, value := range c.QueryArray("include") {
		if value == relation {
			return true
		}
	}
	return false
}
