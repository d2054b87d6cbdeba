package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/agenda-pro/internal/usecase/schedule"
)

type BlockHandler struct {
	create *ucSchedule.CreateBlock
	remove *ucSchedule.DeleteBlock
	list   *ucSchedule.ListBlocks
	log    zerolog.Logger
}

func NewBlockHandler(
	create *ucSchedule.CreateBlock,
	remove *ucSchedule.DeleteBlock,
	list *ucSchedule.ListBlocks,
	log zerolog.Logger,
) *BlockHandler {
	return &BlockHandler{create: create, remove: remove, list: list, log: log}
}

type CreateBlockRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Reason    string    `json:"reason"`
}

func (h *BlockHandler) List(c *gin.Context) {
	profID, ok := queryID(c, "professional_id")
	if !ok {
		return
	}

	blocks, err := h.list.Execute(c.Request.Context(), profID)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.List(c, blocks)
}

func (h *BlockHandler) Create(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), a, ucSchedule.BlockInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	})
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BlockHandler) Delete(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), a, id); err != nil {
		httperr.From(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
