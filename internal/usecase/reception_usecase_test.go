package usecase

import (
	"context"
	"testing"

	"go-clinic-workflow/internal/delivery/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIn(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	ctx := context.Background()

	resp, err := env.reception.CheckIn(ctx, &dto.CheckInRequest{
		Name:     "Ravi Kumar",
		Age:      34,
		Contact:  "9876543210",
		DoctorID: "DOCT001",
	})
	require.NoError(t, err)

	assert.Equal(t, "DOCT-1", resp.Visit.Token)
	assert.Equal(t, "Waiting", resp.Visit.Status)
	assert.Regexp(t, `^P\d{6}$`, resp.Visit.ID)
	assert.Equal(t, "Dr. Sarah Mitchell", resp.DoctorName)
	assert.Equal(t, "Room 101", resp.Room)
	assert.True(t, resp.Fee.Equal(decimal.RequireFromString("50.00")))

	// Check-in lands in both the queue and the permanent history.
	queue, err := env.visitRepo.LoadAll(ctx)
	require.NoError(t, err)
	history, err := env.historyRepo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, queue, 1)
	assert.Len(t, history, 1)
	assert.Equal(t, queue[0].ID, history[0].ID)
}

func TestCheckInTokensIncrementPerDoctor(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	env.seedDoctor("DOCT002", "Dr. James Chen")
	ctx := context.Background()

	first, err := env.reception.CheckIn(ctx, &dto.CheckInRequest{Name: "Ravi Kumar", Age: 34, Contact: "9876543210", DoctorID: "DOCT001"})
	require.NoError(t, err)
	second, err := env.reception.CheckIn(ctx, &dto.CheckInRequest{Name: "Meena Iyer", Age: 28, Contact: "9123456780", DoctorID: "DOCT001"})
	require.NoError(t, err)
	other, err := env.reception.CheckIn(ctx, &dto.CheckInRequest{Name: "Arun Das", Age: 45, Contact: "9001122334", DoctorID: "DOCT002"})
	require.NoError(t, err)

	assert.Equal(t, "DOCT-1", first.Visit.Token)
	assert.Equal(t, "DOCT-2", second.Visit.Token)
	assert.Equal(t, "DOCT-1", other.Visit.Token)
}

func TestCheckInRejectsBadContact(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	ctx := context.Background()

	for _, contact := range []string{"12345", "98765432101", "98765abcde", ""} {
		_, err := env.reception.CheckIn(ctx, &dto.CheckInRequest{
			Name:     "Ravi Kumar",
			Age:      34,
			Contact:  contact,
			DoctorID: "DOCT001",
		})
		assert.Error(t, err, "contact %q", contact)
	}
}

func TestCheckInUnknownDoctor(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reception.CheckIn(context.Background(), &dto.CheckInRequest{
		Name:     "Ravi Kumar",
		Age:      34,
		Contact:  "9876543210",
		DoctorID: "DOCT999",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorBoardWaitingCounts(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	env.seedDoctor("DOCT002", "Dr. James Chen")
	ctx := context.Background()

	env.checkIn("Ravi Kumar", "9876543210", "DOCT001")
	env.checkIn("Meena Iyer", "9123456780", "DOCT001")

	board, err := env.reception.DoctorBoard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 2)

	counts := map[string]int{}
	for _, d := range board {
		counts[d.ID] = d.WaitingCount
	}
	assert.Equal(t, 2, counts["DOCT001"])
	assert.Equal(t, 0, counts["DOCT002"])
}

func TestFindPatient(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	id := env.checkIn("Ravi Kumar", "9876543210", "DOCT001")

	found, err := env.reception.FindPatient(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", found.Name)

	_, err = env.reception.FindPatient(context.Background(), "P000000")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestUpdateContactRewritesQueueAndHistory(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	ctx := context.Background()
	id := env.checkIn("Ravi Kumar", "9876543210", "DOCT001")

	updated, err := env.reception.UpdateContact(ctx, &dto.UpdateContactRequest{
		PatientID: id,
		Contact:   "9000000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "9000000000", updated.Contact)

	queue, err := env.visitRepo.LoadAll(ctx)
	require.NoError(t, err)
	history, err := env.historyRepo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9000000000", queue[0].Contact)
	assert.Equal(t, "9000000000", history[0].Contact)
}

func TestUpdateContactValidatesNewNumber(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	id := env.checkIn("Ravi Kumar", "9876543210", "DOCT001")

	_, err := env.reception.UpdateContact(context.Background(), &dto.UpdateContactRequest{
		PatientID: id,
		Contact:   "123",
	})
	assert.Error(t, err)
}

func TestDeletePatientLeavesQueueAlone(t *testing.T) {
	env := newTestEnv(t)
	env.seedDoctor("DOCT001", "Dr. Sarah Mitchell")
	ctx := context.Background()
	id := env.checkIn("Ravi Kumar", "9876543210", "DOCT001")

	require.NoError(t, env.reception.DeletePatient(ctx, id))

	_, err := env.reception.FindPatient(ctx, id)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	queue, err := env.visitRepo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, queue, 1)

	assert.ErrorIs(t, env.reception.DeletePatient(ctx, id), ErrPatientNotFound)
}
