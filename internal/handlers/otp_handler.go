package handlers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lifecarelabs/lab-portal/internal/config"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/httpresp"
	"github.com/lifecarelabs/lab-portal/internal/infra/otpstore"
	"github.com/lifecarelabs/lab-portal/internal/notify"
	"github.com/lifecarelabs/lab-portal/internal/validators"
)

// Finalidades aceitas de verificação. Qualquer outra é rejeitada antes
// de gravar qualquer coisa.
var otpPurposes = map[string]bool{
	"Registration":  true,
	"PasswordReset": true,
}

type OTPHandler struct {
	otp      *otpstore.Store
	notifier *notify.Dispatcher
	config   *config.Config
}

func NewOTPHandler(otp *otpstore.Store, notifier *notify.Dispatcher, cfg *config.Config) *OTPHandler {
	return &OTPHandler{otp: otp, notifier: notifier, config: cfg}
}

type SendOTPRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Purpose string `json:"purpose"`
}

type VerifyOTPRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Purpose string `json:"purpose"`
	Code    string `json:"code" binding:"required"`
}

func (h *OTPHandler) Send(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	purpose := req.Purpose
	if purpose == "" {
		purpose = "Registration"
	}
	if !otpPurposes[purpose] {
		httperr.BadRequest(c, "invalid_purpose", "Finalidade de verificação inválida.")
		return
	}

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail não parece válido.")
		return
	}

	code, err := sixDigitCode()
	if err != nil {
		httperr.Internal(c, "otp_generation_failed", "Erro interno.")
		return
	}

	if err := h.otp.Save(c.Request.Context(), email, purpose, code); err != nil {
		httperr.Internal(c, "otp_save_failed", "Não foi possível enviar o código.")
		return
	}

	h.notifier.Dispatch(notify.Message{
		Recipient: email,
		Subject:   fmt.Sprintf("Seu código de verificação - %s", h.config.LabName),
		Body: fmt.Sprintf(
			"Seu código de verificação é %s.\nEle expira em 10 minutos.\n\n%s",
			code, h.config.LabName,
		),
	})

	httpresp.OK(c, gin.H{"message": "Código enviado."})
}

func (h *OTPHandler) Verify(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	purpose := req.Purpose
	if purpose == "" {
		purpose = "Registration"
	}

	if err := h.otp.Verify(c.Request.Context(), email, purpose, req.Code); err != nil {
		httperr.FromBusiness(c, err, "invalid_otp", "Código inválido ou expirado.")
		return
	}

	httpresp.OK(c, gin.H{"message": "E-mail verificado."})
}

func sixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
