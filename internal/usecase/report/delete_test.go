package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifecarelabs/lab-portal/internal/httperr"
)

func TestDeleteReport(t *testing.T) {
	repo := newFakeReportRepo()
	store := newFakeStore()
	issue := NewIssueReport(repo, store, nil)
	del := NewDeleteReport(repo, store, nil)

	issued, err := issue.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Asha Rao",
	}, pdfBody())
	require.NoError(t, err)

	rec := repo.byToken[issued.Token]
	require.NoError(t, del.Execute(context.Background(), 1, rec.ID))

	assert.Empty(t, repo.byToken)
	assert.Empty(t, store.objects)
}

// artefato que já sumiu não impede a limpeza do registro
func TestDeleteReportMissingArtifact(t *testing.T) {
	repo := newFakeReportRepo()
	store := newFakeStore()
	issue := NewIssueReport(repo, store, nil)
	del := NewDeleteReport(repo, store, nil)

	issued, err := issue.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Asha Rao",
	}, pdfBody())
	require.NoError(t, err)

	rec := repo.byToken[issued.Token]
	delete(store.objects, rec.FilePath)

	require.NoError(t, del.Execute(context.Background(), 1, rec.ID))
	assert.Empty(t, repo.byToken)
}

// falha real no storage aborta antes de apagar o registro
func TestDeleteReportStoreFailureKeepsRecord(t *testing.T) {
	repo := newFakeReportRepo()
	store := newFakeStore()
	issue := NewIssueReport(repo, store, nil)

	issued, err := issue.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Asha Rao",
	}, pdfBody())
	require.NoError(t, err)

	store.deleteErr = errors.New("storage down")
	del := NewDeleteReport(repo, store, nil)

	rec := repo.byToken[issued.Token]
	err = del.Execute(context.Background(), 1, rec.ID)
	require.Error(t, err)

	assert.Len(t, repo.byToken, 1)
}

func TestDeleteReportNotFound(t *testing.T) {
	del := NewDeleteReport(newFakeReportRepo(), newFakeStore(), nil)

	err := del.Execute(context.Background(), 1, 42)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
