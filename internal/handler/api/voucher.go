package api

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	reqdto "airvoucher-admin/internal/handler/dto/request"
	resdto "airvoucher-admin/internal/handler/dto/response"
	"airvoucher-admin/internal/handler/httperr"
	"airvoucher-admin/internal/handler/middleware"
	"airvoucher-admin/internal/pkg/config"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errIdempotencyKeyRequired = errs.New("Idempotency-Key header is required")
	errIdempotencyKeyFormat   = errs.New("Idempotency-Key must be a uuid")
	errMissingAdmin           = errs.New("authenticated admin missing from context")
)

type VoucherHandler struct {
	cmds   commands.VoucherCommands
	q      queries.VoucherQueries
	upload config.UploadConfig
}

func NewVoucherHandler(cmds commands.VoucherCommands, q queries.VoucherQueries, cfg config.Config) *VoucherHandler {
	return &VoucherHandler{cmds: cmds, q: q, upload: cfg.Upload}
}

// @Summary Voucher availability
// @Description Count vouchers per standard denomination for a provider and service
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param provider query string true "Telecom provider or supplier name"
// @Param service query string false "Voucher category (airtime, data, ...)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /vouchers/availability [get]
func (h *VoucherHandler) Availability(c *gin.Context) {
	result, err := h.q.Availability(c.Request.Context(), c.Query("provider"), c.Query("service"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}

// @Summary Pick a voucher
// @Description Return the oldest active voucher for provider, service and amount without claiming it
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PickVoucherRequest true "Pick request"
// @Success 200 {object} resdto.PickedVoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vouchers/pick [post]
func (h *VoucherHandler) Pick(c *gin.Context) {
	var req reqdto.PickVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	picked, err := h.q.Pick(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to pick voucher")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPickedVoucher(picked))
}

// @Summary List vouchers
// @Description List vouchers newest first with keyset pagination
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param status query string false "active, sold or expired"
// @Param vendor query string false "Vendor"
// @Param supplier query string false "Supplier name"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.VoucherListResponse
// @Failure 400 {object} httperr.Response
// @Router /vouchers [get]
func (h *VoucherHandler) List(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.List(c.Request.Context(), listFilter(c), cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list vouchers")
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherPage(items, next))
}

// @Summary Get voucher
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 404 {object} httperr.Response
// @Router /vouchers/{id} [get]
func (h *VoucherHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load voucher")
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

// @Summary Create voucher
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVoucherRequest true "Voucher"
// @Success 201 {object} resdto.VoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /vouchers [post]
func (h *VoucherHandler) Create(c *gin.Context) {
	var req reqdto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortInvalidRequest(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err, "Create voucher failed")
		return
	}
	h.respondWithVoucher(c, http.StatusCreated, id)
}

// @Summary Update voucher
// @Description Partial update; omitted fields keep their stored values
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Param request body reqdto.UpdateVoucherRequest true "Fields to change"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vouchers/{id} [put]
func (h *VoucherHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	existing, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load voucher")
		return
	}
	params, err := req.ToParams(existing)
	if err != nil {
		abortInvalidRequest(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, params); err != nil {
		abortWithUsecaseError(c, err, "Update voucher failed")
		return
	}
	h.respondWithVoucher(c, http.StatusOK, id)
}

// @Summary Change voucher status
// @Description Allowed transitions: active to sold, active to expired
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Param request body reqdto.ChangeVoucherStatusRequest true "Target status"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /vouchers/{id}/status [patch]
func (h *VoucherHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeVoucherStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	if err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status); err != nil {
		abortWithUsecaseError(c, err, "Change voucher status failed")
		return
	}
	h.respondWithVoucher(c, http.StatusOK, id)
}

// @Summary Delete voucher
// @Tags vouchers
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vouchers/{id} [delete]
func (h *VoucherHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Delete voucher failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload vouchers
// @Description Insert every row of a .csv or .xlsx file, or none of them
// @Tags vouchers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key (uuid)"
// @Param file formData file true "Voucher sheet"
// @Success 201 {object} resdto.UploadResponse
// @Success 200 {object} resdto.UploadResponse "Replayed result"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /vouchers/upload [post]
func (h *VoucherHandler) Upload(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAdmin, "Unauthorized", nil)
		return
	}
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Multipart field \"file\" is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Uploaded file could not be read", nil)
		return
	}
	defer f.Close()

	var src io.Reader = f
	if h.upload.MaxBytes > 0 {
		// one byte over the limit is enough for the size check downstream
		src = io.LimitReader(f, h.upload.MaxBytes+1)
	}
	content, err := io.ReadAll(src)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Uploaded file could not be read", nil)
		return
	}

	result, err := h.cmds.Upload(c.Request.Context(), commands.UploadInput{
		AdminID:        adminID,
		IdempotencyKey: key,
		Filename:       fh.Filename,
		Content:        content,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Upload failed")
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.UploadResponse{Inserted: result.Inserted, Replayed: result.Replayed})
}

// @Summary Export vouchers
// @Description Download the filtered inventory as an .xlsx workbook
// @Tags vouchers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param status query string false "active, sold or expired"
// @Param vendor query string false "Vendor"
// @Param supplier query string false "Supplier name"
// @Success 200 {file} file
// @Router /vouchers/export [get]
func (h *VoucherHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.q.Export(c.Request.Context(), listFilter(c), &buf); err != nil {
		abortWithUsecaseError(c, err, "Export failed")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="vouchers.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *VoucherHandler) respondWithVoucher(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load voucher", nil)
		return
	}
	c.JSON(status, resdto.FromVoucherView(view))
}

func listFilter(c *gin.Context) queries.VoucherListFilter {
	return queries.VoucherListFilter{
		Status:       optionalQuery(c, "status"),
		Vendor:       optionalQuery(c, "vendor"),
		SupplierName: optionalQuery(c, "supplier"),
	}
}

func optionalQuery(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errIdempotencyKeyFormat
	}

	return key, nil
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
