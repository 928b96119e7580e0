package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/lifecarelabs/lab-portal/internal/audit"
	"github.com/lifecarelabs/lab-portal/internal/config"
	"github.com/lifecarelabs/lab-portal/internal/handlers"
	"github.com/lifecarelabs/lab-portal/internal/infra/blobstore"
	"github.com/lifecarelabs/lab-portal/internal/infra/cache"
	"github.com/lifecarelabs/lab-portal/internal/infra/otpstore"
	"github.com/lifecarelabs/lab-portal/internal/infra/repository"
	"github.com/lifecarelabs/lab-portal/internal/middleware"
	"github.com/lifecarelabs/lab-portal/internal/models"
	"github.com/lifecarelabs/lab-portal/internal/notify"
	ucbooking "github.com/lifecarelabs/lab-portal/internal/usecase/booking"
	uccalendar "github.com/lifecarelabs/lab-portal/internal/usecase/calendar"
	ucreport "github.com/lifecarelabs/lab-portal/internal/usecase/report"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	store blobstore.ArtifactStore,
) {

	// ====== INFRA ======
	bookingRepo := repository.NewBookingGormRepository(db)
	calendarRepo := repository.NewCalendarGormRepository(db)
	reportRepo := repository.NewReportGormRepository(db)

	availCache := cache.NewAvailabilityCache(rdb)
	otpStore := otpstore.New(rdb)

	auditor := audit.NewDispatcher(audit.New(db))
	notifier := notify.NewDispatcher(notify.NewSMTPSender(cfg))

	// ====== USE CASES ======
	createBooking := ucbooking.NewCreateBooking(
		bookingRepo, notifier, auditor,
		cfg.SlotCapacity, cfg.LabTimezone, cfg.LabEmail, cfg.LabName,
	)
	updateStatus := ucbooking.NewUpdateBookingStatus(bookingRepo, auditor)
	deleteBooking := ucbooking.NewDeleteBooking(bookingRepo, auditor)
	listBookings := ucbooking.NewListBookings(bookingRepo)
	availability := ucbooking.NewGetAvailability(calendarRepo)

	blockCapacity := uccalendar.NewBlockCapacity(calendarRepo, availCache, auditor)
	unblockCapacity := uccalendar.NewUnblockCapacity(calendarRepo, availCache, auditor)
	listBlocks := uccalendar.NewListBlocks(calendarRepo, cfg.LabTimezone)

	issueReport := ucreport.NewIssueReport(reportRepo, store, auditor)
	retrieveReport := ucreport.NewRetrieveReport(reportRepo)
	deleteReport := ucreport.NewDeleteReport(reportRepo, store, auditor)
	listReports := ucreport.NewListReports(reportRepo)

	// ====== HANDLERS ======
	authHandler := handlers.NewAuthHandler(db, cfg, otpStore)
	otpHandler := handlers.NewOTPHandler(otpStore, notifier, cfg)
	publicHandler := handlers.NewPublicHandler(db, availability, availCache, retrieveReport, store)
	bookingHandler := handlers.NewBookingHandler(createBooking, updateStatus, deleteBooking, listBookings)
	calendarHandler := handlers.NewCalendarHandler(blockCapacity, unblockCapacity, listBlocks)
	reportHandler := handlers.NewReportHandler(db, issueReport, deleteReport, listReports)
	catalogHandler := handlers.NewCatalogHandler(db)
	enquiryHandler := handlers.NewEnquiryHandler(db)
	adminHandler := handlers.NewAdminHandler(db, listBookings, cfg.LabTimezone)
	meHandler := handlers.NewMeHandler(db)

	api := r.Group("/api/v1")

	// ====== PÚBLICO ======
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/send-otp", otpHandler.Send)
	api.POST("/auth/verify-otp", otpHandler.Verify)

	api.GET("/categories", publicHandler.ListCategories)
	api.GET("/tests", publicHandler.ListTests)
	api.GET("/slots", calendarHandler.SlotGrid)
	api.GET("/availability", publicHandler.GetAvailability)
	api.POST("/enquiries", publicHandler.CreateEnquiry)

	// acesso a laudo por credencial, sem login
	api.POST("/reports/lookup", publicHandler.LookupReport)
	api.POST("/reports/download", publicHandler.DownloadReport)

	// ====== AUTENTICADO ======
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(cfg))

	auth.GET("/me", meHandler.Get)
	auth.PATCH("/me", meHandler.Update)

	// ====== PACIENTE ======
	patient := auth.Group("")
	patient.Use(middleware.RequireRole(models.RolePatient))

	patient.POST("/bookings", bookingHandler.Create)
	patient.GET("/bookings/mine", bookingHandler.MyBookings)
	patient.GET("/reports/mine", reportHandler.MyReports)

	// ====== EQUIPE ======
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))

	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/audit-logs", adminHandler.ListAuditLogs)

	admin.GET("/bookings", bookingHandler.List)
	admin.GET("/bookings/export", adminHandler.ExportBookingsCSV)
	admin.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
	admin.DELETE("/bookings/:id", bookingHandler.Delete)

	admin.GET("/blocked-slots", calendarHandler.ListBlocks)
	admin.POST("/blocked-slots", calendarHandler.Block)
	admin.DELETE("/blocked-slots/:id", calendarHandler.Unblock)

	admin.POST("/reports", reportHandler.Issue)
	admin.GET("/reports", reportHandler.List)
	admin.DELETE("/reports/:id", reportHandler.Delete)

	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)
	admin.POST("/tests", catalogHandler.CreateTest)
	admin.PATCH("/tests/:id", catalogHandler.UpdateTest)
	admin.DELETE("/tests/:id", catalogHandler.DeleteTest)

	admin.GET("/enquiries", enquiryHandler.List)
	admin.PATCH("/enquiries/:id/read", enquiryHandler.MarkRead)
}
