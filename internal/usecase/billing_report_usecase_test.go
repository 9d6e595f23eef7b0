package usecase

import (
	"context"
	"testing"

	"go-clinic-workflow/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) seedBills(bills ...entity.PatientBill) {
	e.t.Helper()
	require.NoError(e.t, e.billRepo.SaveAll(context.Background(), bills))
}

func TestBillingReportPaidTotal(t *testing.T) {
	env := newTestEnv(t)
	env.seedBills(
		entity.PatientBill{BillID: "b-1", PatientID: "P111111", Item: "Pharmacy: Paracetamol", Amount: decimal.RequireFromString("31.50"), Status: entity.BillStatusPaid},
		entity.PatientBill{BillID: "b-2", PatientID: "P222222", Item: "Lab: Blood Test", Amount: decimal.RequireFromString("52.50"), Status: entity.BillStatusPending},
		entity.PatientBill{BillID: "b-3", PatientID: "P111111", Item: "Lab: ECG", Amount: decimal.RequireFromString("68.25"), Status: entity.BillStatusPaid},
	)

	report, err := env.billingReport.Report(context.Background(), "")
	require.NoError(t, err)

	assert.Len(t, report.Bills, 3)
	assert.True(t, report.PaidTotal.Equal(decimal.RequireFromString("99.75")))
}

func TestBillingReportSearchKeepsGlobalPaidTotal(t *testing.T) {
	env := newTestEnv(t)
	env.seedBills(
		entity.PatientBill{BillID: "b-1", PatientID: "P111111", Item: "Pharmacy: Paracetamol", Amount: decimal.RequireFromString("31.50"), Status: entity.BillStatusPaid},
		entity.PatientBill{BillID: "b-2", PatientID: "P222222", Item: "Lab: Blood Test", Amount: decimal.RequireFromString("52.50"), Status: entity.BillStatusPaid},
	)

	report, err := env.billingReport.Report(context.Background(), "blood")
	require.NoError(t, err)

	assert.Len(t, report.Bills, 1)
	assert.True(t, report.PaidTotal.Equal(decimal.RequireFromString("84.00")))
}

func TestMarkPaid(t *testing.T) {
	env := newTestEnv(t)
	env.seedBills(
		entity.PatientBill{BillID: "b-1", PatientID: "P111111", Item: "Lab: ECG", Amount: decimal.RequireFromString("68.25"), Status: entity.BillStatusPending},
	)
	ctx := context.Background()

	settled, err := env.billingReport.MarkPaid(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "Paid", settled.Status)

	_, err = env.billingReport.MarkPaid(ctx, "b-1")
	assert.ErrorIs(t, err, ErrBillAlreadyPaid)

	_, err = env.billingReport.MarkPaid(ctx, "b-404")
	assert.ErrorIs(t, err, ErrBillNotFound)
}
