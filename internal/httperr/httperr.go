package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var messages = map[string]string{
	"professional_not_found": "Profissional não encontrado.",
	"service_not_found":      "Serviço não encontrado.",
	"appointment_not_found":  "Agendamento não encontrado.",
	"block_not_found":        "Bloqueio não encontrado.",
	"invalid_date":           "Data inválida. Use YYYY-MM-DD.",
	"invalid_date_time":      "Data ou hora inválida.",
	"invalid_duration":       "Duração do serviço inválida.",
	"invalid_time_range":     "O horário final deve ser posterior ao inicial.",
	"invalid_weekday":        "Dia da semana inválido.",
	"invalid_time":           "Horário inválido. Use HH:MM.",
	"invalid_status":         "Status inválido.",
	"block_in_past":          "Não é possível bloquear horários no passado.",
	"in_the_past":            "Não é possível agendar no passado.",
	"too_soon":               "Horário com antecedência insuficiente.",
	"outside_working_hours":  "Fora do horário de atendimento.",
	"invalid_state":          "Transição de status inválida.",
	"invalid_update":         "Não é possível remarcar e encerrar o agendamento no mesmo pedido.",
	"service_inactive":       "Serviço indisponível.",
	"time_conflict":          "Conflito de horário.",
	"forbidden":              "Permissão insuficiente.",
	"not_a_professional":     "Apenas profissionais podem realizar esta ação.",
	"not_a_client":           "Apenas clientes podem realizar esta ação.",
}

func messageFor(code, fallback string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return fallback
}

// From traduz o erro retornado por um use case na resposta HTTP adequada.
// Erros sem Kind são tratados como falha de infraestrutura e logados.
func From(c *gin.Context, log zerolog.Logger, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		log.Error().Err(err).
			Str("path", c.FullPath()).
			Msg("request failed")
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	code := be.Code
	switch be.Kind {
	case KindNotFound:
		NotFound(c, code, messageFor(code, "Recurso não encontrado."))
	case KindForbidden:
		Forbidden(c, code, messageFor(code, "Permissão insuficiente."))
	case KindSlotConflict:
		Conflict(c, code, messageFor(code, "Conflito de horário."))
	default:
		BadRequest(c, code, messageFor(code, "Dados inválidos."))
	}
}
