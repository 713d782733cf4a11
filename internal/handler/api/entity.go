package api

import (
	"net/http"

	resdto "airvoucher-admin/internal/handler/dto/response"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// createRequest and updateRequest are the editor schema of one entity: a request DTO
// that turns itself into the entity's domain params.
type createRequest[P any] interface {
	ToParams() P
}

type updateRequest[V, P any] interface {
	ToParams(existing *V) P
}

// EntityHandler serves list/get/create/update/delete for one administered entity.
// V is the read view, P the domain params, R the response body.
type EntityHandler[V, P, R any] struct {
	name   string
	cmds   commands.EntityCommands[P]
	q      queries.EntityQueries[V]
	create func(c *gin.Context) (P, error)
	update func(c *gin.Context, existing *V) (P, error)
}

func newEntityHandler[V, P, R, CReq, UReq any,
	PC interface {
		*CReq
		createRequest[P]
	},
	PU interface {
		*UReq
		updateRequest[V, P]
	},
](name string, cmds commands.EntityCommands[P], q queries.EntityQueries[V]) *EntityHandler[V, P, R] {
	return &EntityHandler[V, P, R]{
		name: name,
		cmds: cmds,
		q:    q,
		create: func(c *gin.Context) (P, error) {
			req := PC(new(CReq))
			if err := c.ShouldBindJSON(req); err != nil {
				var zero P
				return zero, err
			}
			return req.ToParams(), nil
		},
		update: func(c *gin.Context, existing *V) (P, error) {
			req := PU(new(UReq))
			if err := c.ShouldBindJSON(req); err != nil {
				var zero P
				return zero, err
			}
			return req.ToParams(existing), nil
		},
	}
}

func (h *EntityHandler[V, P, R]) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list "+h.name+"s")
		return
	}
	c.JSON(http.StatusOK, resdto.FromViews[V, R](views))
}

func (h *EntityHandler[V, P, R]) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load "+h.name)
		return
	}
	c.JSON(http.StatusOK, resdto.FromView[V, R](view))
}

func (h *EntityHandler[V, P, R]) Create(c *gin.Context) {
	params, err := h.create(c)
	if err != nil {
		abortInvalidRequest(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err, "Create "+h.name+" failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load "+h.name)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromView[V, R](view))
}

// Update loads the stored entity first so partial requests can keep unchanged fields.
func (h *EntityHandler[V, P, R]) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	existing, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load "+h.name)
		return
	}
	params, err := h.update(c, existing)
	if err != nil {
		abortInvalidRequest(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, params); err != nil {
		abortWithUsecaseError(c, err, "Update "+h.name+" failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load "+h.name)
		return
	}
	c.JSON(http.StatusOK, resdto.FromView[V, R](view))
}

func (h *EntityHandler[V, P, R]) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Delete "+h.name+" failed")
		return
	}
	c.Status(http.StatusNoContent)
}
