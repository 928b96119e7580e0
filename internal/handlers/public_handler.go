package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/httpresp"
	"github.com/lifecarelabs/lab-portal/internal/infra/blobstore"
	"github.com/lifecarelabs/lab-portal/internal/infra/cache"
	"github.com/lifecarelabs/lab-portal/internal/models"
	"github.com/lifecarelabs/lab-portal/internal/timezone"
	ucbooking "github.com/lifecarelabs/lab-portal/internal/usecase/booking"
	ucreport "github.com/lifecarelabs/lab-portal/internal/usecase/report"
)

// PublicHandler concentra as rotas sem autenticação: catálogo,
// disponibilidade, contato e acesso a laudos por credencial.
type PublicHandler struct {
	db           *gorm.DB
	availability *ucbooking.GetAvailability
	availCache   *cache.AvailabilityCache
	retrieve     *ucreport.RetrieveReport
	store        blobstore.ArtifactStore
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucbooking.GetAvailability,
	availCache *cache.AvailabilityCache,
	retrieve *ucreport.RetrieveReport,
	store blobstore.ArtifactStore,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		availCache:   availCache,
		retrieve:     retrieve,
		store:        store,
	}
}

// ====== CATÁLOGO ======

func (h *PublicHandler) ListCategories(c *gin.Context) {
	var categories []models.TestCategory
	if err := h.db.Order("name").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}
	httpresp.List(c, categories)
}

func (h *PublicHandler) ListTests(c *gin.Context) {
	q := h.db.Preload("Category").Where("is_active = ?", true)

	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var tests []models.Test
	if err := q.Order("name").Find(&tests).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tests", "Erro ao listar exames.")
		return
	}
	httpresp.List(c, tests)
}

// ====== DISPONIBILIDADE ======

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}
	date = timezone.DateOnly(date)

	if av, ok := h.availCache.Get(c.Request.Context(), dateStr); ok {
		httpresp.OK(c, av)
		return
	}

	av, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao consultar disponibilidade.")
		return
	}

	h.availCache.Set(c.Request.Context(), dateStr, av)
	httpresp.OK(c, av)
}

// ====== CONTATO ======

type EnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

func (h *PublicHandler) CreateEnquiry(c *gin.Context) {
	var req EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e mensagem são obrigatórios.")
		return
	}

	enquiry := models.ContactEnquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.db.Create(&enquiry).Error; err != nil {
		httperr.Internal(c, "failed_to_create_enquiry", "Erro ao registrar mensagem.")
		return
	}

	httpresp.Created(c, enquiry)
}

// ====== ACESSO A LAUDO ======

type ReportAccessRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LookupReport valida a credencial e devolve só os metadados; o PDF sai
// pelo download, com a mesma credencial.
func (h *PublicHandler) LookupReport(c *gin.Context) {
	var req ReportAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o token e a senha.")
		return
	}

	rec, err := h.retrieve.Execute(c.Request.Context(), req.Token, req.Password)
	if err != nil {
		httperr.FromBusiness(c, err, "internal_error", "Erro ao consultar laudo.")
		return
	}

	httpresp.OK(c, rec)
}

func (h *PublicHandler) DownloadReport(c *gin.Context) {
	var req ReportAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o token e a senha.")
		return
	}

	rec, err := h.retrieve.Execute(c.Request.Context(), req.Token, req.Password)
	if err != nil {
		httperr.FromBusiness(c, err, "internal_error", "Erro ao consultar laudo.")
		return
	}

	body, err := h.store.Get(c.Request.Context(), rec.FilePath)
	if err != nil {
		// credencial válida mas artefato sumido é problema nosso, não 404
		httperr.Internal(c, "artifact_unavailable", "Laudo indisponível no momento.")
		return
	}
	defer body.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", rec.ReportID+".pdf"))
	c.Status(http.StatusOK)
	io.Copy(c.Writer, body)
}
