package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

type ProfessionalHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewProfessionalHandler(db *gorm.DB, log zerolog.Logger) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, log: log}
}

type UpdateProfessionalRequest struct {
	Speciality        *string `json:"speciality"`
	Description       *string `json:"description"`
	PhotoURL          *string `json:"photo_url"`
	Address           *string `json:"address"`
	Timezone          *string `json:"timezone"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

// List é público: só profissionais com usuário ativo aparecem.
func (h *ProfessionalHandler) List(c *gin.Context) {
	limit := queryInt(c, "limit", 100)
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	skip := queryInt(c, "skip", 0)
	if skip < 0 {
		skip = 0
	}

	db := h.db.WithContext(c.Request.Context())
	activeUsers := db.Model(&models.User{}).Select("id").Where("active = ?", true)

	var profs []models.Professional
	if err := db.
		Preload("User").
		Where("user_id IN (?)", activeUsers).
		Order("id ASC").
		Limit(limit).
		Offset(skip).
		Find(&profs).Error; err != nil {

		httperr.From(c, h.log, err)
		return
	}

	httpresp.List(c, profs)
}

func (h *ProfessionalHandler) GetMe(c *gin.Context) {
	prof, ok := requireProfessional(c)
	if !ok {
		return
	}

	p, ok := h.load(c, prof.ProfessionalID)
	if !ok {
		return
	}

	httpresp.OK(c, p)
}

func (h *ProfessionalHandler) UpdateMe(c *gin.Context) {
	prof, ok := requireProfessional(c)
	if !ok {
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	p, ok := h.load(c, prof.ProfessionalID)
	if !ok {
		return
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		p.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if req.Timezone != nil {
		tz := strings.TrimSpace(*req.Timezone)
		if !timezone.IsValid(tz) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		p.Timezone = tz
	}

	if req.Speciality != nil {
		p.Speciality = strings.TrimSpace(*req.Speciality)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.PhotoURL != nil {
		p.PhotoURL = strings.TrimSpace(*req.PhotoURL)
	}
	if req.Address != nil {
		p.Address = strings.TrimSpace(*req.Address)
	}

	if err := h.db.WithContext(c.Request.Context()).Omit("User").Save(p).Error; err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *ProfessionalHandler) load(c *gin.Context, id uint) (*models.Professional, bool) {
	var p models.Professional
	if err := h.db.WithContext(c.Request.Context()).Preload("User").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
			return nil, false
		}
		httperr.From(c, h.log, err)
		return nil, false
	}
	return &p, true
}
