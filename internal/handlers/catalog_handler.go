package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/httpresp"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

// CRUD do catálogo de exames (equipe). Sem regra de negócio além da
// persistência, então fala direto com o banco.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ====== CATEGORIAS ======

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome é obrigatório.")
		return
	}

	category := models.TestCategory{
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
	}

	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Erro ao criar categoria.")
		return
	}

	httpresp.Created(c, category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	result := h.db.Delete(&models.TestCategory{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_category", "Erro ao excluir categoria.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Categoria excluída."})
}

// ====== EXAMES ======

type TestRequest struct {
	Name        string  `json:"name" binding:"required"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description"`
	SampleType  string  `json:"sample_type"`
	ReportTime  string  `json:"report_time"`
}

func (h *CatalogHandler) CreateTest(c *gin.Context) {
	var req TestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome, categoria e preço são obrigatórios.")
		return
	}

	var count int64
	h.db.Model(&models.TestCategory{}).Where("id = ?", req.CategoryID).Count(&count)
	if count == 0 {
		httperr.BadRequest(c, "category_not_found", "Categoria inválida.")
		return
	}

	test := models.Test{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Description: req.Description,
		SampleType:  req.SampleType,
		ReportTime:  req.ReportTime,
		IsActive:    true,
	}

	if err := h.db.Create(&test).Error; err != nil {
		httperr.Internal(c, "failed_to_create_test", "Erro ao criar exame.")
		return
	}

	httpresp.Created(c, test)
}

type UpdateTestRequest struct {
	Name        *string  `json:"name"`
	CategoryID  *uint    `json:"category_id"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	SampleType  *string  `json:"sample_type"`
	ReportTime  *string  `json:"report_time"`
	IsActive    *bool    `json:"is_active"`
}

func (h *CatalogHandler) UpdateTest(c *gin.Context) {
	var test models.Test
	if err := h.db.First(&test, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "test_not_found", "Exame não encontrado.")
		return
	}

	var req UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.SampleType != nil {
		updates["sample_type"] = *req.SampleType
	}
	if req.ReportTime != nil {
		updates["report_time"] = *req.ReportTime
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		httpresp.OK(c, test)
		return
	}

	if err := h.db.Model(&test).Updates(updates).Error; err != nil {
		httperr.Internal(c, "failed_to_update_test", "Erro ao atualizar exame.")
		return
	}

	httpresp.OK(c, test)
}

// DeleteTest desativa em vez de excluir: reservas antigas continuam
// apontando para o exame.
func (h *CatalogHandler) DeleteTest(c *gin.Context) {
	result := h.db.Model(&models.Test{}).
		Where("id = ?", c.Param("id")).
		Update("is_active", false)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_test", "Erro ao desativar exame.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "test_not_found", "Exame não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Exame desativado."})
}
