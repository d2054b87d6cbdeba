package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

// List é público; sem professional_id lista o catálogo inteiro.
func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Where("active = ?", true)

	if c.Query("professional_id") != "" {
		profID, ok := queryID(c, "professional_id")
		if !ok {
			return
		}
		q = q.Where("professional_id = ?", profID)
	}

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	prof, ok := requireProfessional(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc := models.Service{
		ProfessionalID: prof.ProfessionalID,
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		DurationMin:    req.DurationMin,
		Price:          req.Price,
		Active:         true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		httperr.From(c, h.log, err)
		return
	}

	h.record(c, prof, "service_created", &svc)
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	prof, ok := requireProfessional(c)
	if !ok {
		return
	}

	svc, ok := h.loadOwned(c, prof)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMin != nil {
		// agendamentos já feitos guardam a própria duração
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duração do serviço inválida.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(svc).Error; err != nil {
		httperr.From(c, h.log, err)
		return
	}

	h.record(c, prof, "service_updated", svc)
	httpresp.OK(c, svc)
}

// Delete desativa o serviço; o histórico de agendamentos continua apontando para ele.
func (h *ServiceHandler) Delete(c *gin.Context) {
	prof, ok := requireProfessional(c)
	if !ok {
		return
	}

	svc, ok := h.loadOwned(c, prof)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(svc).
		Update("active", false).Error; err != nil {

		httperr.From(c, h.log, err)
		return
	}
	svc.Active = false

	h.record(c, prof, "service_deleted", svc)
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) loadOwned(c *gin.Context, prof actor.Professional) (*models.Service, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return nil, false
		}
		httperr.From(c, h.log, err)
		return nil, false
	}

	if svc.ProfessionalID != prof.ProfessionalID {
		httperr.Forbidden(c, "forbidden", "Permissão insuficiente.")
		return nil, false
	}

	return &svc, true
}

func (h *ServiceHandler) record(c *gin.Context, prof actor.Professional, action string, svc *models.Service) {
	h.audit.Dispatch(audit.Event{
		ProfessionalID: &prof.ProfessionalID,
		UserID:         &prof.UserID,
		TraceID:        actor.TraceID(c.Request.Context()),
		Action:         action,
		Entity:         "service",
		EntityID:       &svc.ID,
		Metadata: map[string]any{
			"name":     svc.Name,
			"duration": svc.DurationMin,
			"price":    svc.Price,
			"active":   svc.Active,
		},
	})
}
