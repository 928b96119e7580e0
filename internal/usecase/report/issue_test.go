package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/lifecarelabs/lab-portal/internal/domain/report"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/infra/blobstore"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeReportRepo struct {
	byToken map[string]*models.Report
	byRID   map[string]*models.Report
	nextID  uint

	createErr error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{
		byToken: map[string]*models.Report{},
		byRID:   map[string]*models.Report{},
	}
}

func (f *fakeReportRepo) ReportIDExists(ctx context.Context, reportID string) (bool, error) {
	_, ok := f.byRID[reportID]
	return ok, nil
}

func (f *fakeReportRepo) TokenExists(ctx context.Context, token string) (bool, error) {
	_, ok := f.byToken[token]
	return ok, nil
}

func (f *fakeReportRepo) CreateReport(ctx context.Context, r *models.Report) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byToken[r.TokenNumber]; ok {
		return httperr.ErrConflict("duplicate_token", "duplicate")
	}
	f.nextID++
	r.ID = f.nextID
	f.byToken[r.TokenNumber] = r
	f.byRID[r.ReportID] = r
	return nil
}

func (f *fakeReportRepo) GetByToken(ctx context.Context, token string) (*models.Report, error) {
	return f.byToken[token], nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	for _, r := range f.byToken {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, httperr.ErrNotFound("report_not_found", "not found")
}

func (f *fakeReportRepo) DeleteReport(ctx context.Context, id uint) error {
	for token, r := range f.byToken {
		if r.ID == id {
			delete(f.byToken, token)
			delete(f.byRID, r.ReportID)
			return nil
		}
	}
	return httperr.ErrNotFound("report_not_found", "not found")
}

func (f *fakeReportRepo) ListReports(ctx context.Context) ([]models.Report, error) {
	var out []models.Report
	for _, r := range f.byToken {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReportRepo) ListByPatientName(ctx context.Context, name string) ([]models.Report, error) {
	var out []models.Report
	for _, r := range f.byToken {
		if strings.EqualFold(r.PatientName, name) {
			out = append(out, *r)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeReportRepo)(nil)

type fakeStore struct {
	objects map[string][]byte

	putErr    error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Put(ctx context.Context, ref string, content io.Reader) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	f.objects[ref] = data
	return nil
}

func (f *fakeStore) Get(ctx context.Context, ref string) (io.ReadCloser, error) {
	data, ok := f.objects[ref]
	if !ok {
		return nil, blobstore.ErrArtifactNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStore) Delete(ctx context.Context, ref string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.objects[ref]; !ok {
		return blobstore.ErrArtifactNotFound
	}
	delete(f.objects, ref)
	return nil
}

var _ blobstore.ArtifactStore = (*fakeStore)(nil)

func pdfBody() io.Reader {
	return strings.NewReader("%PDF-1.4 fake")
}

// --------------------------------------------------
// Issue
// --------------------------------------------------

func TestIssueReportDefaults(t *testing.T) {
	repo := newFakeReportRepo()
	store := newFakeStore()
	uc := NewIssueReport(repo, store, nil)

	result, err := uc.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Asha Rao",
	}, pdfBody())
	require.NoError(t, err)

	assert.Regexp(t, `^RID\d{6}$`, result.ReportID)
	assert.Equal(t, result.ReportID, result.Token)
	assert.Equal(t, "ASHA", result.Secret)

	rec := repo.byToken[result.Token]
	require.NotNil(t, rec)

	// só o hash fica guardado, e ele bate com a senha devolvida
	assert.NotEqual(t, result.Secret, rec.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(rec.PasswordHash), []byte(result.Secret),
	))

	// artefato persistido sob a referência do registro
	_, ok := store.objects[rec.FilePath]
	assert.True(t, ok)
}

func TestIssueReportExplicitCredentials(t *testing.T) {
	repo := newFakeReportRepo()
	uc := NewIssueReport(repo, newFakeStore(), nil)

	result, err := uc.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Asha Rao",
		Token:       "LAB-2026-001",
		Secret:      "s3cret",
	}, pdfBody())
	require.NoError(t, err)

	assert.Equal(t, "LAB-2026-001", result.Token)
	assert.Equal(t, "s3cret", result.Secret)
}

func TestIssueReportDuplicateToken(t *testing.T) {
	repo := newFakeReportRepo()
	store := newFakeStore()
	uc := NewIssueReport(repo, store, nil)

	_, err := uc.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Asha Rao",
		Token:       "LAB-1",
	}, pdfBody())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Ravi Kumar",
		Token:       "LAB-1",
	}, pdfBody())
	assert.True(t, httperr.IsBusiness(err, "duplicate_token"))

	// reprovado antes de gravar artefato
	assert.Len(t, store.objects, 1)
}

func TestIssueReportMissingInput(t *testing.T) {
	uc := NewIssueReport(newFakeReportRepo(), newFakeStore(), nil)

	_, err := uc.Execute(context.Background(), 1, IssueReportInput{}, pdfBody())
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))

	_, err = uc.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Asha Rao",
	}, nil)
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))
}

func TestIssueReportCleansOrphanOnInsertFailure(t *testing.T) {
	repo := newFakeReportRepo()
	repo.createErr = errors.New("insert failed")
	store := newFakeStore()
	uc := NewIssueReport(repo, store, nil)

	_, err := uc.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Asha Rao",
	}, pdfBody())
	require.Error(t, err)

	assert.Empty(t, store.objects)
}
