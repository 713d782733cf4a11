package api

import (
	"net/http"

	"airvoucher-admin/internal/handler/httperr"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
}

// First match wins; client errors echo the usecase message.
var errorMappings = []errorMapping{
	{commands.ErrValidation, http.StatusBadRequest},
	{queries.ErrInvalidRequest, http.StatusBadRequest},
	{queries.ErrInvalidCursor, http.StatusBadRequest},
	{commands.ErrVoucherNotFound, http.StatusNotFound},
	{queries.ErrVoucherNotFound, http.StatusNotFound},
	{commands.ErrEntityNotFound, http.StatusNotFound},
	{queries.ErrEntityNotFound, http.StatusNotFound},
	{queries.ErrNoVoucherAvailable, http.StatusNotFound},
	{commands.ErrEntityDuplicate, http.StatusConflict},
	{commands.ErrStatusConflict, http.StatusConflict},
	{commands.ErrIdempotencyInProgress, http.StatusConflict},
	{commands.ErrIdempotencyKeyReused, http.StatusConflict},
	{commands.ErrEntityReference, http.StatusUnprocessableEntity},
	{commands.ErrInvalidTransition, http.StatusUnprocessableEntity},
	{commands.ErrMalformedUpload, http.StatusUnprocessableEntity},
	{commands.ErrUnsupportedUpload, http.StatusUnsupportedMediaType},
	{commands.ErrUploadTooLarge, http.StatusRequestEntityTooLarge},
	{commands.ErrPartnerUnavailable, http.StatusBadGateway},
	{queries.ErrPartnerUnavailable, http.StatusBadGateway},
	{queries.ErrCatalogUnavailable, http.StatusBadGateway},
}

func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	var rowErrs *commands.RowErrors
	if errs.Is(err, commands.ErrUploadRejected) && errs.As(err, &rowErrs) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Upload rejected", httperr.RejectedRows{Rows: rowErrs.Rows})
		return
	}
	var missing *commands.MissingRetailersError
	if errs.Is(err, commands.ErrUnknownRetailers) && errs.As(err, &missing) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown retailers", httperr.MissingRetailers{IDs: missing.IDs})
		return
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			msg := err.Error()
			if m.status == http.StatusBadGateway {
				msg = "Partner service unavailable"
			}
			httperr.AbortWithError(c, m.status, err, msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}
