package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type ClientHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewClientHandler(db *gorm.DB, log zerolog.Logger) *ClientHandler {
	return &ClientHandler{db: db, log: log}
}

// ======================================================
// LIST CLIENTS (PROFISSIONAL)
// ======================================================

// List devolve quem já agendou com o profissional logado.
func (h *ClientHandler) List(c *gin.Context) {
	prof, ok := requireProfessional(c)
	if !ok {
		return
	}

	db := h.db.WithContext(c.Request.Context())

	booked := db.Model(&models.Appointment{}).
		Select("client_id").
		Where("professional_id = ?", prof.ProfessionalID)

	q := db.Where("id IN (?)", booked)

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.User
	if err := q.
		Order("name ASC").
		Find(&clients).Error; err != nil {

		httperr.From(c, h.log, err)
		return
	}

	httpresp.List(c, clients)
}
