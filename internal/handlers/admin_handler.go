package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lifecarelabs/lab-portal/internal/dto"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/httpresp"
	"github.com/lifecarelabs/lab-portal/internal/models"
	"github.com/lifecarelabs/lab-portal/internal/timezone"
	ucbooking "github.com/lifecarelabs/lab-portal/internal/usecase/booking"
)

type AdminHandler struct {
	db          *gorm.DB
	list        *ucbooking.ListBookings
	labTimezone string
}

func NewAdminHandler(db *gorm.DB, list *ucbooking.ListBookings, labTimezone string) *AdminHandler {
	return &AdminHandler{db: db, list: list, labTimezone: labTimezone}
}

// ====== DASHBOARD ======

func (h *AdminHandler) Dashboard(c *gin.Context) {
	var (
		totalBookings   int64
		pendingBookings int64
		todayBookings   int64
		totalUsers      int64
		totalReports    int64
		unreadEnquiries int64
	)

	today := timezone.Today(h.labTimezone)

	h.db.Model(&models.Booking{}).Count(&totalBookings)
	h.db.Model(&models.Booking{}).Where("status = ?", "pending").Count(&pendingBookings)
	h.db.Model(&models.Booking{}).Where("booking_date = ?", today).Count(&todayBookings)
	h.db.Model(&models.User{}).Where("role = ?", models.RolePatient).Count(&totalUsers)
	h.db.Model(&models.Report{}).Count(&totalReports)
	h.db.Model(&models.ContactEnquiry{}).Where("is_read = ?", false).Count(&unreadEnquiries)

	var recent []models.Booking
	h.db.Preload("Test").Order("created_at DESC").Limit(5).Find(&recent)

	httpresp.OK(c, gin.H{
		"total_bookings":   totalBookings,
		"pending_bookings": pendingBookings,
		"today_bookings":   todayBookings,
		"total_patients":   totalUsers,
		"total_reports":    totalReports,
		"unread_enquiries": unreadEnquiries,
		"recent_bookings":  dto.ToBookingList(recent),
	})
}

// ====== EXPORT ======

// ExportBookingsCSV aceita os mesmos filtros da listagem (status, date)
// e devolve a planilha da operação.
func (h *AdminHandler) ExportBookingsCSV(c *gin.Context) {
	bookings, err := h.list.ForStaff(
		c.Request.Context(),
		c.Query("status"),
		c.Query("date"),
	)
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_export", "Erro ao exportar reservas.")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="bookings.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{
		"id", "booking_date", "slot_time", "patient_name", "patient_phone",
		"test", "price", "home_collection", "status", "payment_status",
	})

	for _, b := range bookings {
		w.Write([]string{
			strconv.FormatUint(uint64(b.ID), 10),
			b.BookingDate.Format("2006-01-02"),
			b.SlotTime,
			b.PatientName,
			b.PatientPhone,
			b.Test.Name,
			fmt.Sprintf("%.2f", b.Test.Price),
			strconv.FormatBool(b.HomeCollection),
			b.Status,
			b.PaymentStatus,
		})
	}

	w.Flush()
}

// ====== AUDITORIA ======

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	var logs []models.AuditLog
	if err := h.db.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
