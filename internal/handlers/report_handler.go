package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/httpresp"
	"github.com/lifecarelabs/lab-portal/internal/middleware"
	"github.com/lifecarelabs/lab-portal/internal/models"
	ucreport "github.com/lifecarelabs/lab-portal/internal/usecase/report"
	"github.com/lifecarelabs/lab-portal/internal/validators"
)

type ReportHandler struct {
	db     *gorm.DB
	issue  *ucreport.IssueReport
	delete *ucreport.DeleteReport
	list   *ucreport.ListReports
}

func NewReportHandler(
	db *gorm.DB,
	issue *ucreport.IssueReport,
	deleteUC *ucreport.DeleteReport,
	list *ucreport.ListReports,
) *ReportHandler {
	return &ReportHandler{
		db:     db,
		issue:  issue,
		delete: deleteUC,
		list:   list,
	}
}

// ====== EQUIPE ======

// Issue recebe multipart: o PDF em "file" e os metadados nos demais
// campos do formulário. A resposta traz a senha em claro, única vez em
// que ela aparece.
func (h *ReportHandler) Issue(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o PDF do laudo.")
		return
	}

	if ok, reason := validators.ValidatePDF(fileHeader); !ok {
		httperr.BadRequest(c, "invalid_file", reason)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "file_open_failed", "Não foi possível ler o arquivo.")
		return
	}
	defer file.Close()

	age, _ := strconv.Atoi(c.PostForm("age"))

	in := ucreport.IssueReportInput{
		PatientName: c.PostForm("patient_name"),
		Age:         age,
		Gender:      c.PostForm("gender"),
		DoctorName:  c.PostForm("doctor_name"),
		TestName:    c.PostForm("test_name"),
		Remarks:     c.PostForm("remarks"),
		Token:       c.PostForm("token"),
		Secret:      c.PostForm("password"),
	}

	// vínculo opcional com um usuário cadastrado
	if rawUserID := c.PostForm("user_id"); rawUserID != "" {
		userID, err := strconv.ParseUint(rawUserID, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_user_id", "Usuário inválido.")
			return
		}
		uid := uint(userID)
		in.UserID = &uid
	}

	actorID := c.GetUint(middleware.ContextUserID)

	result, err := h.issue.Execute(c.Request.Context(), actorID, in, file)
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_issue_report", "Erro ao emitir laudo.")
		return
	}

	httpresp.Created(c, result)
}

func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.list.All(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_reports", "Erro ao listar laudos.")
		return
	}
	httpresp.List(c, reports)
}

func (h *ReportHandler) Delete(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	actorID := c.GetUint(middleware.ContextUserID)

	if err := h.delete.Execute(c.Request.Context(), actorID, uint(reportID)); err != nil {
		httperr.FromBusiness(c, err, "failed_to_delete_report", "Erro ao excluir laudo.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Laudo excluído."})
}

// ====== PACIENTE ======

// MyReports lista os laudos do paciente logado: os vinculados ao seu ID
// mais os emitidos com o mesmo nome antes do cadastro.
func (h *ReportHandler) MyReports(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	var reports []models.Report
	if err := h.db.
		Where("user_id = ? OR patient_name ILIKE ?", userID, user.Name).
		Order("uploaded_at DESC").
		Find(&reports).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reports", "Erro ao listar laudos.")
		return
	}

	httpresp.List(c, reports)
}
