package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type MeHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewMeHandler(db *gorm.DB, log zerolog.Logger) *MeHandler {
	return &MeHandler{db: db, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, a.ID()).Error; err != nil {
		httperr.From(c, h.log, err)
		return
	}

	resp := gin.H{
		"user": user,
		"role": actor.Role(a),
	}

	if prof, ok := actor.AsProfessional(a); ok {
		var p models.Professional
		if err := h.db.WithContext(c.Request.Context()).First(&p, prof.ProfessionalID).Error; err != nil {
			httperr.From(c, h.log, err)
			return
		}
		resp["professional"] = p
	}

	httpresp.OK(c, resp)
}
