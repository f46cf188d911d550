package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "yultimate/errors"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type Paginated struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Paginated{
		Data: data,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// CSV writes body as a downloadable CSV attachment.
func CSV(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", body)
}

func Error(c *gin.Context, status int, code apperrors.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message, Code: string(code)})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, apperrors.ErrCodeValidation, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, apperrors.ErrCodeUnauthorized, message)
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, apperrors.ErrCodeForbidden, apperrors.ErrForbidden.Message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, apperrors.ErrCodeNotFound, message)
}

func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, apperrors.ErrCodeDBError, "Internal server error")
}

// FromError reports err on the gin context and writes the matching response.
// Errors that are not AppErrors, and database errors, are answered with a generic message.
func FromError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		Error(c, http.StatusInternalServerError, apperrors.ErrCodeDBError, fallback)
		return
	}
	status := appErr.Status()
	message := appErr.Message
	if status == http.StatusInternalServerError {
		message = fallback
	}
	Error(c, status, appErr.Code, message)
}
