package report

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifecarelabs/lab-portal/internal/audit"
	domain "github.com/lifecarelabs/lab-portal/internal/domain/report"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/infra/blobstore"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type IssueReportInput struct {
	PatientName string
	Age         int
	Gender      string
	DoctorName  string
	TestName    string
	Remarks     string

	UserID *uint

	// Token e Secret são opcionais: sem token usa-se o report_id, sem
	// secret deriva-se o mnemônico do nome.
	Token  string
	Secret string
}

type IssueReportResult struct {
	ReportID string `json:"report_id"`
	Token    string `json:"token"`

	// mostrado uma única vez; só o hash fica guardado
	Secret string `json:"secret"`
}

// ======================================================
// USE CASE
// ======================================================

const maxIDAttempts = 5

type IssueReport struct {
	repo  domain.Repository
	store blobstore.ArtifactStore
	audit *audit.Dispatcher
}

func NewIssueReport(
	repo domain.Repository,
	store blobstore.ArtifactStore,
	auditor *audit.Dispatcher,
) *IssueReport {
	return &IssueReport{
		repo:  repo,
		store: store,
		audit: auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *IssueReport) Execute(
	ctx context.Context,
	actorID uint,
	in IssueReportInput,
	pdf io.Reader,
) (*IssueReportResult, error) {

	if in.PatientName == "" || pdf == nil {
		return nil, httperr.ErrValidation(
			"missing_fields",
			"Nome do paciente e arquivo são obrigatórios.",
		)
	}

	// --------------------------------------------------
	// report_id: sorteia até confirmar unicidade
	// --------------------------------------------------
	reportID, err := uc.uniqueReportID(ctx)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// token: explícito (se livre) ou o próprio report_id
	// --------------------------------------------------
	token := in.Token
	if token != "" {
		taken, err := uc.repo.TokenExists(ctx, token)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, httperr.ErrConflict(
				"duplicate_token",
				"Token já está em uso.",
			)
		}
	} else {
		token = reportID
	}

	// --------------------------------------------------
	// secret: fornecido ou mnemônico do nome
	// --------------------------------------------------
	secret := in.Secret
	if secret == "" {
		secret = domain.MnemonicSecret(in.PatientName)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// artefato antes do registro; desfaz se o INSERT falhar
	// --------------------------------------------------
	ref := "reports/" + uuid.New().String() + ".pdf"
	if err := uc.store.Put(ctx, ref, pdf); err != nil {
		return nil, err
	}

	rec := &models.Report{
		ReportID:     reportID,
		TokenNumber:  token,
		UserID:       in.UserID,
		PatientName:  in.PatientName,
		Age:          in.Age,
		Gender:       in.Gender,
		DoctorName:   in.DoctorName,
		TestName:     in.TestName,
		PasswordHash: string(hash),
		FilePath:     ref,
		Remarks:      in.Remarks,
	}

	if err := uc.repo.CreateReport(ctx, rec); err != nil {
		if delErr := uc.store.Delete(ctx, ref); delErr != nil {
			log.Printf("orphan artifact %s: %v", ref, delErr)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "report_issued",
		Entity:   "report",
		EntityID: &rec.ID,
	})

	return &IssueReportResult{
		ReportID: reportID,
		Token:    token,
		Secret:   secret,
	}, nil
}

// uniqueReportID re-sorteia até o identificador não existir; um único
// sorteio não basta, a colisão é improvável mas possível.
func (uc *IssueReport) uniqueReportID(ctx context.Context) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id, err := domain.NewReportID()
		if err != nil {
			return "", err
		}

		exists, err := uc.repo.ReportIDExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}

	return "", httperr.ErrConflict(
		"report_id_exhausted",
		"Não foi possível gerar um identificador único.",
	)
}
