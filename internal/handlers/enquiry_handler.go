package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/httpresp"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

type EnquiryHandler struct {
	db *gorm.DB
}

func NewEnquiryHandler(db *gorm.DB) *EnquiryHandler {
	return &EnquiryHandler{db: db}
}

func (h *EnquiryHandler) List(c *gin.Context) {
	q := h.db.Order("created_at DESC")

	if c.Query("unread") == "true" {
		q = q.Where("is_read = ?", false)
	}

	var enquiries []models.ContactEnquiry
	if err := q.Find(&enquiries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_enquiries", "Erro ao listar mensagens.")
		return
	}

	httpresp.List(c, enquiries)
}

func (h *EnquiryHandler) MarkRead(c *gin.Context) {
	result := h.db.Model(&models.ContactEnquiry{}).
		Where("id = ?", c.Param("id")).
		Update("is_read", true)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_update_enquiry", "Erro ao atualizar mensagem.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "enquiry_not_found", "Mensagem não encontrada.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Mensagem marcada como lida."})
}
