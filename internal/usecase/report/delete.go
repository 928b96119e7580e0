package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifecarelabs/lab-portal/internal/audit"
	domain "github.com/lifecarelabs/lab-portal/internal/domain/report"
	"github.com/lifecarelabs/lab-portal/internal/infra/blobstore"
)

type DeleteReport struct {
	repo  domain.Repository
	store blobstore.ArtifactStore
	audit *audit.Dispatcher
}

func NewDeleteReport(
	repo domain.Repository,
	store blobstore.ArtifactStore,
	auditor *audit.Dispatcher,
) *DeleteReport {
	return &DeleteReport{
		repo:  repo,
		store: store,
		audit: auditor,
	}
}

// Execute remove artefato e registro juntos. Se o artefato não puder
// ser removido o registro fica intacto e a falha parcial é reportada;
// artefato já ausente não impede a limpeza do registro.
func (uc *DeleteReport) Execute(
	ctx context.Context,
	actorID uint,
	reportID uint,
) error {

	rec, err := uc.repo.GetByID(ctx, reportID)
	if err != nil {
		return err
	}

	if err := uc.store.Delete(ctx, rec.FilePath); err != nil &&
		!errors.Is(err, blobstore.ErrArtifactNotFound) {
		return fmt.Errorf("delete artifact %s: %w", rec.FilePath, err)
	}

	if err := uc.repo.DeleteReport(ctx, reportID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "report_deleted",
		Entity:   "report",
		EntityID: &reportID,
	})

	return nil
}
