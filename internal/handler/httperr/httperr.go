// Package httperr is the error envelope every API failure is written in:
// {"error":{"message":...},"detail":...}.
package httperr

import (
	"airvoucher-admin/internal/domain/voucher"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// RejectedRows is the detail of a refused voucher upload.
type RejectedRows struct {
	Rows []voucher.RowError `json:"rows"`
}

// MissingRetailers is the detail of an assignment naming retailers that do not exist.
type MissingRetailers struct {
	IDs []uuid.UUID `json:"missing_retailer_ids"`
}

func New(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the envelope and keeps err on the gin context for the request log.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError needs the underlying error")
	}

	resp := New(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
