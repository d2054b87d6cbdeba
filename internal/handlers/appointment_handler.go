package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/agenda-pro/internal/usecase/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	createGuest  *ucAppointment.CreateGuestAppointment
	update       *ucAppointment.UpdateAppointment
	cancel       *ucAppointment.CancelAppointment
	changeStatus *ucAppointment.ChangeStatus
	listMine     *ucAppointment.ListMyAppointments

	log zerolog.Logger
}

type AppointmentUseCases struct {
	Availability *ucAppointment.GetAvailability
	Create       *ucAppointment.CreateAppointment
	CreateGuest  *ucAppointment.CreateGuestAppointment
	Update       *ucAppointment.UpdateAppointment
	Cancel       *ucAppointment.CancelAppointment
	ChangeStatus *ucAppointment.ChangeStatus
	ListMine     *ucAppointment.ListMyAppointments
}

func NewAppointmentHandler(uc AppointmentUseCases, log zerolog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		availability: uc.Availability,
		create:       uc.Create,
		createGuest:  uc.CreateGuest,
		update:       uc.Update,
		cancel:       uc.Cancel,
		changeStatus: uc.ChangeStatus,
		listMine:     uc.ListMine,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	DateTime       string `json:"date_time" binding:"required"`
	Notes          string `json:"notes"`
}

type CreateGuestAppointmentRequest struct {
	CreateAppointmentRequest

	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`
	ClientPhone string `json:"client_phone"`
}

type UpdateAppointmentRequest struct {
	DateTime *string `json:"date_time"`
	Notes    *string `json:"notes"`
	Status   *string `json:"status"`
}

// ======================================================
// AVAILABILITY (público)
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	profID, ok := queryID(c, "professional_id")
	if !ok {
		return
	}
	serviceID, ok := queryID(c, "service_id")
	if !ok {
		return
	}

	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProfessionalID: profID,
		ServiceID:      serviceID,
		Date:           date,
	})
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), a, req.input())
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *AppointmentHandler) CreateGuest(c *gin.Context) {
	var req CreateGuestAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email, ok := validators.NormalizeEmail(req.ClientEmail)
	if !ok {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	out, err := h.createGuest.Execute(c.Request.Context(), ucAppointment.CreateGuestAppointmentInput{
		CreateAppointmentInput: req.input(),
		ClientName:             req.ClientName,
		ClientEmail:            email,
		ClientPhone:            req.ClientPhone,
	})
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.Created(c, out)
}

func (r CreateAppointmentRequest) input() ucAppointment.CreateAppointmentInput {
	return ucAppointment.CreateAppointmentInput{
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		DateTime:       strings.TrimSpace(r.DateTime),
		Notes:          r.Notes,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", ucAppointment.DefaultPageSize)

	list, err := h.listMine.Execute(c.Request.Context(), a, skip, limit)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// UPDATE / STATUS
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.update.Execute(c.Request.Context(), a, id, ucAppointment.UpdateAppointmentInput{
		DateTime: req.DateTime,
		Notes:    req.Notes,
		Status:   req.Status,
	})
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}

// Cancel é o DELETE: o registro fica com status cancelled.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	out, err := h.cancel.Execute(c.Request.Context(), a, id)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.setStatus(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.setStatus(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) setStatus(c *gin.Context, to domain.Status) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	out, err := h.changeStatus.Execute(c.Request.Context(), a, id, to)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}
