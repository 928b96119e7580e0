package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/httpresp"
	"github.com/lifecarelabs/lab-portal/internal/middleware"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) Get(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	httpresp.OK(c, userPayload(&user))
}

type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Password *string `json:"password"`
}

// Update não toca no e-mail: ele é a identidade de login e a chave das
// verificações por OTP.
func (h *MeHandler) Update(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Phone != nil && *req.Phone != "" {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			httperr.BadRequest(c, "weak_password", "A senha precisa de ao menos 6 caracteres.")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro interno.")
			return
		}
		updates["password_hash"] = string(hashed)
	}

	if len(updates) == 0 {
		httpresp.OK(c, userPayload(&user))
		return
	}

	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar perfil.")
		return
	}

	httpresp.OK(c, userPayload(&user))
}
