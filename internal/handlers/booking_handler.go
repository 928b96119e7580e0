package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifecarelabs/lab-portal/internal/dto"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/httpresp"
	"github.com/lifecarelabs/lab-portal/internal/middleware"
	ucbooking "github.com/lifecarelabs/lab-portal/internal/usecase/booking"
)

type BookingHandler struct {
	create       *ucbooking.CreateBooking
	updateStatus *ucbooking.UpdateBookingStatus
	delete       *ucbooking.DeleteBooking
	list         *ucbooking.ListBookings
}

func NewBookingHandler(
	create *ucbooking.CreateBooking,
	updateStatus *ucbooking.UpdateBookingStatus,
	deleteUC *ucbooking.DeleteBooking,
	list *ucbooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		updateStatus: updateStatus,
		delete:       deleteUC,
		list:         list,
	}
}

// ====== PACIENTE ======

type CreateBookingRequest struct {
	TestID   uint   `json:"test_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	SlotTime string `json:"slot_time" binding:"required"`

	PatientName  string `json:"patient_name" binding:"required"`
	PatientPhone string `json:"patient_phone" binding:"required"`
	PatientEmail string `json:"patient_email"`

	HomeCollection    bool   `json:"home_collection"`
	CollectionAddress string `json:"collection_address" binding:"required"`

	ReferralType string `json:"referral_type"`
	DoctorName   string `json:"doctor_name"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha todos os campos obrigatórios.")
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	b, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		UserID:            userID,
		TestID:            req.TestID,
		Date:              req.Date,
		SlotTime:          req.SlotTime,
		PatientName:       req.PatientName,
		PatientPhone:      req.PatientPhone,
		PatientEmail:      req.PatientEmail,
		HomeCollection:    req.HomeCollection,
		CollectionAddress: req.CollectionAddress,
		ReferralType:      req.ReferralType,
		DoctorName:        req.DoctorName,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_create_booking", "Erro ao criar reserva.")
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	bookings, err := h.list.ByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}
	httpresp.List(c, bookings)
}

// ====== EQUIPE ======

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.ForStaff(
		c.Request.Context(),
		c.Query("status"),
		c.Query("date"),
	)
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}
	httpresp.List(c, dto.ToBookingList(bookings))
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o novo status.")
		return
	}

	actorID := c.GetUint(middleware.ContextUserID)

	updated, err := h.updateStatus.Execute(
		c.Request.Context(),
		actorID,
		uint(bookingID),
		req.Status,
	)
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_update_status", "Erro ao atualizar status.")
		return
	}

	httpresp.OK(c, updated)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	actorID := c.GetUint(middleware.ContextUserID)

	if err := h.delete.Execute(c.Request.Context(), actorID, uint(bookingID)); err != nil {
		httperr.FromBusiness(c, err, "failed_to_delete_booking", "Erro ao excluir reserva.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Reserva excluída."})
}
