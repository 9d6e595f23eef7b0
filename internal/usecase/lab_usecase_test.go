package usecase

import (
	"context"
	"testing"

	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderTest(t *testing.T, env *testEnv, testName string) string {
	t.Helper()
	ctx := context.Background()

	id := env.checkIn("Ravi Kumar", "9876543210", "DOCT001")
	env.claim("DOCT001")
	request, err := env.doctor.OrderLabTest(ctx, "DOCT001", &dto.OrderLabTestRequest{
		VisitID:  id,
		TestName: testName,
	})
	require.NoError(t, err)
	return request.RequestID
}

func TestPendingRequestsFilter(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	ctx := context.Background()

	orderTest(t, env, "Blood Test")

	all, err := env.lab.PendingRequests(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)

	matched, err := env.lab.PendingRequests(ctx, all[0].PatientID[1:4])
	require.NoError(t, err)
	assert.Len(t, matched, 1)

	none, err := env.lab.PendingRequests(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateRequestKeepsItOpen(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	ctx := context.Background()

	requestID := orderTest(t, env, "Blood Test")

	updated, err := env.lab.UpdateRequest(ctx, requestID, &dto.LabResultsRequest{
		CollectionDate: "2026-03-14",
		CollectionTime: "09:30",
		ResultsNotes:   "Sample collected, awaiting analysis",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", updated.CollectionDate)

	pending, err := env.lab.PendingRequests(ctx, "")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	reports, err := env.labReportRepo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestUpdateRequestValidatesResults(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	requestID := orderTest(t, env, "Blood Test")

	_, err := env.lab.UpdateRequest(context.Background(), requestID, &dto.LabResultsRequest{
		CollectionDate: "2026-03-14",
		CollectionTime: "09:30",
		ResultsNotes:   "too short",
	})
	assert.Error(t, err)
}

func TestCompleteRequest(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	ctx := context.Background()

	requestID := orderTest(t, env, "Blood Test")

	invoice, err := env.lab.CompleteRequest(ctx, requestID, "Marcus Webb", &dto.LabResultsRequest{
		CollectionDate: "2026-03-14",
		CollectionTime: "09:30",
		ResultsNotes:   "RBC and WBC within normal limits",
	})
	require.NoError(t, err)

	// 50.00 + 5% tax
	assert.True(t, invoice.Subtotal.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, invoice.Tax.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, invoice.GrandTotal.Equal(decimal.RequireFromString("52.50")))
	assert.Equal(t, "Marcus Webb", invoice.Provider)

	// Request leaves the open ledger.
	pending, err := env.lab.PendingRequests(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, pending)

	// A pending bill is posted.
	bills, err := env.billRepo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, entity.BillStatusPending, bills[0].Status)
	assert.True(t, bills[0].Amount.Equal(decimal.RequireFromString("52.50")))

	_, err = env.lab.GetRequest(ctx, requestID)
	assert.ErrorIs(t, err, ErrLabRequestNotFound)
}

func TestDeleteRequestEmitsNothing(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	ctx := context.Background()

	requestID := orderTest(t, env, "X-Ray")

	require.NoError(t, env.lab.DeleteRequest(ctx, requestID))

	reports, err := env.labReportRepo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)

	bills, err := env.billRepo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestTestCatalog(t *testing.T) {
	env := newTestEnv(t)

	catalog := env.lab.TestCatalog()
	require.Len(t, catalog, 4)

	names := map[string]bool{}
	for _, c := range catalog {
		names[c.Name] = true
		assert.True(t, c.Cost.IsPositive())
		assert.NotEmpty(t, c.NormalRange)
	}
	assert.True(t, names["Blood Test"])
	assert.True(t, names["ECG"])
}
