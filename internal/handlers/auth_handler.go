package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/config"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
	"github.com/BruksfildServices01/agenda-pro/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	log      zerolog.Logger
	resolver validators.Resolver
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Type     string `json:"type"`

	// só para profissionais
	Speciality string `json:"speciality"`
	Timezone   string `json:"timezone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User         models.User          `json:"user"`
	Professional *models.Professional `json:"professional,omitempty"`
	Token        string               `json:"access_token"`
	TokenType    string               `json:"token_type"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email, ok := validators.NormalizeEmail(req.Email)
	if !ok {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	if h.config.CheckEmailDomain &&
		!validators.IsEmailDomainValid(c.Request.Context(), h.resolver, email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	userType := models.UserType(strings.ToLower(strings.TrimSpace(req.Type)))
	switch userType {
	case "":
		userType = models.UserTypeClient
	case models.UserTypeClient, models.UserTypeProfessional:
	default:
		httperr.BadRequest(c, "invalid_user_type", "Tipo de usuário inválido.")
		return
	}

	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = h.config.DefaultTimezone
	}
	if userType == models.UserTypeProfessional && !timezone.IsValid(tz) {
		httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(req.Phone),
		Type:         userType,
		Active:       true,
	}

	var prof *models.Professional

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if userType != models.UserTypeProfessional {
			return nil
		}

		prof = &models.Professional{
			UserID:     user.ID,
			Speciality: strings.TrimSpace(req.Speciality),
			Timezone:   tz,
		}
		return tx.Create(prof).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_already_exists", "E-mail já cadastrado.")
			return
		}
		httperr.From(c, h.log, err)
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	h.log.Info().
		Uint("user_id", user.ID).
		Str("type", string(user.Type)).
		Msg("user registered")

	httpresp.Created(c, authResponse{
		User:         user,
		Professional: prof,
		Token:        token,
		TokenType:    "bearer",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
			return
		}
		httperr.From(c, h.log, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	if !user.Active {
		httperr.BadRequest(c, "inactive_user", "Usuário inativo.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.OK(c, authResponse{
		User:      user,
		Token:     token,
		TokenType: "bearer",
	})
}

// --------- JWT ---------

// generateToken assina apenas o id; o papel é resolvido a cada requisição.
func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(user.ID), 10),
		"exp": now.Add(tokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
