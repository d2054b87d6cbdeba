package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
)

// requireActor devolve o ator autenticado ou responde 401.
func requireActor(c *gin.Context) (actor.Actor, bool) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "Autenticação necessária.")
		return nil, false
	}
	return a, true
}

// requireProfessional responde 403 quando o ator não é profissional.
func requireProfessional(c *gin.Context) (actor.Professional, bool) {
	a, ok := requireActor(c)
	if !ok {
		return actor.Professional{}, false
	}

	prof, ok := actor.AsProfessional(a)
	if !ok {
		httperr.Forbidden(c, "not_a_professional", "Apenas profissionais podem realizar esta ação.")
		return actor.Professional{}, false
	}
	return prof, true
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// queryID lê um id obrigatório da query string.
func queryID(c *gin.Context, key string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+key, "Parâmetro "+key+" inválido.")
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
