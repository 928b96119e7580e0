package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifecarelabs/lab-portal/internal/httperr"
)

func TestRetrieveReportRoundTrip(t *testing.T) {
	repo := newFakeReportRepo()
	issue := NewIssueReport(repo, newFakeStore(), nil)
	retrieve := NewRetrieveReport(repo)

	issued, err := issue.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Asha Rao",
		TestName:    "CBC",
	}, pdfBody())
	require.NoError(t, err)

	rec, err := retrieve.Execute(context.Background(), issued.Token, issued.Secret)
	require.NoError(t, err)

	assert.Equal(t, issued.ReportID, rec.ReportID)
	assert.Equal(t, "CBC", rec.TestName)
}

// token inexistente e senha errada precisam ser indistinguíveis para o
// cliente
func TestRetrieveReportGenericFailure(t *testing.T) {
	repo := newFakeReportRepo()
	issue := NewIssueReport(repo, newFakeStore(), nil)
	retrieve := NewRetrieveReport(repo)

	issued, err := issue.Execute(context.Background(), 1, IssueReportInput{
		PatientName: "Asha Rao",
	}, pdfBody())
	require.NoError(t, err)

	_, errUnknownToken := retrieve.Execute(context.Background(), "RID000000", issued.Secret)
	_, errWrongSecret := retrieve.Execute(context.Background(), issued.Token, "WRONG")

	require.Error(t, errUnknownToken)
	require.Error(t, errWrongSecret)
	assert.Equal(t, errUnknownToken, errWrongSecret)
	assert.True(t, httperr.IsKind(errUnknownToken, httperr.KindAuth))
}

func TestRetrieveReportMissingFields(t *testing.T) {
	retrieve := NewRetrieveReport(newFakeReportRepo())

	_, err := retrieve.Execute(context.Background(), "", "ASHA")
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))

	_, err = retrieve.Execute(context.Background(), "RID123456", "")
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))
}
