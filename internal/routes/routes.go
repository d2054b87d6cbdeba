package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	"github.com/BruksfildServices01/agenda-pro/internal/config"
	"github.com/BruksfildServices01/agenda-pro/internal/handlers"
	infraRepo "github.com/BruksfildServices01/agenda-pro/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-pro/internal/lock"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
	"github.com/BruksfildServices01/agenda-pro/internal/notification"
	ucAppointment "github.com/BruksfildServices01/agenda-pro/internal/usecase/appointment"
	ucSchedule "github.com/BruksfildServices01/agenda-pro/internal/usecase/schedule"
)

// Deps reúne a infraestrutura montada no main.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    zerolog.Logger

	// Locker é único por processo: criação e remarcação disputam o mesmo lock.
	Locker lock.Locker

	Audit  *audit.Dispatcher
	Notify *notification.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	scheduleRepo := infraRepo.NewScheduleGormRepository(d.DB)
	actorResolver := infraRepo.NewActorResolver(d.DB)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		d.Locker,
		d.Audit,
		d.Notify,
	)

	appointmentUC := handlers.AppointmentUseCases{
		Availability: ucAppointment.NewGetAvailability(appointmentRepo),
		Create:       createAppointmentUC,
		CreateGuest:  ucAppointment.NewCreateGuestAppointment(createAppointmentUC),
		Update:       ucAppointment.NewUpdateAppointment(appointmentRepo, d.Locker, d.Audit),
		Cancel:       ucAppointment.NewCancelAppointment(appointmentRepo, d.Locker, d.Audit),
		ChangeStatus: ucAppointment.NewChangeStatus(appointmentRepo, d.Locker, d.Audit),
		ListMine:     ucAppointment.NewListMyAppointments(appointmentRepo),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config, d.Log)
	meHandler := handlers.NewMeHandler(d.DB, d.Log)
	professionalHandler := handlers.NewProfessionalHandler(d.DB, d.Log)
	serviceHandler := handlers.NewServiceHandler(d.DB, d.Audit, d.Log)
	clientHandler := handlers.NewClientHandler(d.DB, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Log)

	workingHoursHandler := handlers.NewWorkingHoursHandler(
		ucSchedule.NewUpsertWorkingHours(scheduleRepo, d.Audit),
		ucSchedule.NewListWorkingHours(scheduleRepo),
		d.Log,
	)

	blockHandler := handlers.NewBlockHandler(
		ucSchedule.NewCreateBlock(scheduleRepo, d.Audit),
		ucSchedule.NewDeleteBlock(scheduleRepo, d.Audit),
		ucSchedule.NewListBlocks(scheduleRepo),
		d.Log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentUC, d.Log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/professionals", professionalHandler.List)
		api.GET("/services", serviceHandler.List)
		api.GET("/working-hours/professional/:professional_id", workingHoursHandler.ListByProfessional)
		api.GET("/blocks", blockHandler.List)

		api.GET("/appointments/available-slots", appointmentHandler.AvailableSlots)
		api.POST("/guest-appointments", appointmentHandler.CreateGuest)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config, actorResolver))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/professional", professionalHandler.GetMe)
			secured.PATCH("/me/professional", professionalHandler.UpdateMe)
			secured.GET("/me/clients", clientHandler.List)
			secured.GET("/me/working-hours", workingHoursHandler.ListMine)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.POST("/working-hours", workingHoursHandler.Upsert)

			secured.POST("/blocks", blockHandler.Create)
			secured.DELETE("/blocks/:id", blockHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/my-appointments", appointmentHandler.ListMine)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		}
	}
}
