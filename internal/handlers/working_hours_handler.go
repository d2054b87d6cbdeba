package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/agenda-pro/internal/usecase/schedule"
)

type WorkingHoursHandler struct {
	upsert *ucSchedule.UpsertWorkingHours
	list   *ucSchedule.ListWorkingHours
	log    zerolog.Logger
}

func NewWorkingHoursHandler(
	upsert *ucSchedule.UpsertWorkingHours,
	list *ucSchedule.ListWorkingHours,
	log zerolog.Logger,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{upsert: upsert, list: list, log: log}
}

type WorkingHoursRequest struct {
	Weekday   *int   `json:"weekday" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    *bool  `json:"active"`
}

// ListByProfessional é público e mostra só os dias ativos.
func (h *WorkingHoursHandler) ListByProfessional(c *gin.Context) {
	profID, ok := parseID(c, "professional_id")
	if !ok {
		return
	}

	hours, err := h.list.Execute(c.Request.Context(), profID, true)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.List(c, hours)
}

// ListMine devolve todos os dias do profissional logado, inclusive os inativos.
func (h *WorkingHoursHandler) ListMine(c *gin.Context) {
	prof, ok := requireProfessional(c)
	if !ok {
		return
	}

	hours, err := h.list.Execute(c.Request.Context(), prof.ProfessionalID, false)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.List(c, hours)
}

func (h *WorkingHoursHandler) Upsert(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	var req WorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	wh, err := h.upsert.Execute(c.Request.Context(), a, ucSchedule.WorkingHoursInput{
		Weekday:   *req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Active:    req.Active,
	})
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.OK(c, wh)
}
