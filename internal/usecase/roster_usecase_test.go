package usecase

import (
	"context"
	"testing"

	"go-clinic-workflow/internal/delivery/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAddStaffGeneratesRoleID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doctor, err := env.roster.AddStaff(ctx, &dto.StaffRequest{
		Name:   "Dr. Sarah Mitchell",
		Role:   "Doctor",
		Detail: "General Medicine",
		Fee:    decimal.RequireFromString("50.00"),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^DOCT\d{3}$`, doctor.ID)

	tech, err := env.roster.AddStaff(ctx, &dto.StaffRequest{
		Name: "Marcus Webb",
		Role: "Lab Technician",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^LAB\d{3}$`, tech.ID)
	assert.Equal(t, "Available", tech.Status)
}

func TestAddStaffExplicitID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.roster.AddStaff(ctx, &dto.StaffRequest{ID: "DOCT001", Name: "Dr. Sarah Mitchell", Role: "Doctor"})
	require.NoError(t, err)

	_, err = env.roster.AddStaff(ctx, &dto.StaffRequest{ID: "DOCT001", Name: "Dr. James Chen", Role: "Doctor"})
	assert.ErrorIs(t, err, ErrStaffIDExists)
}

func TestAddStaffRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.roster.AddStaff(context.Background(), &dto.StaffRequest{
		Name: "Somebody",
		Role: "Janitor",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAddStaffHashesPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.roster.AddStaff(ctx, &dto.StaffRequest{
		Name:     "Priya Sharma",
		Role:     "Pharmacist",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	staff, err := env.rosterRepo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 1)

	assert.NotEqual(t, "s3cret-pass", staff[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(staff[0].PasswordHash), []byte("s3cret-pass")))

	// The hash never appears in responses.
	assert.Equal(t, created.ID, staff[0].ID)
}

func TestAddStaffDefaultPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.roster.AddStaff(ctx, &dto.StaffRequest{Name: "Anna Kowalski", Role: "Receptionist"})
	require.NoError(t, err)

	staff, err := env.rosterRepo.LoadAll(ctx)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(staff[0].PasswordHash), []byte(defaultStaffPassword)))
}

func TestUpdateStaffKeepsIDAndHash(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.roster.AddStaff(ctx, &dto.StaffRequest{
		Name:     "Dr. Sarah Mitchell",
		Role:     "Doctor",
		Password: "original-pass",
	})
	require.NoError(t, err)

	updated, err := env.roster.UpdateStaff(ctx, created.ID, &dto.StaffRequest{
		Name:   "Dr. Sarah Mitchell-Reyes",
		Role:   "Doctor",
		Detail: "Internal Medicine",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Dr. Sarah Mitchell-Reyes", updated.Name)

	// No password in the update request means the old hash stays valid.
	staff, err := env.rosterRepo.LoadAll(ctx)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(staff[0].PasswordHash), []byte("original-pass")))
}

func TestUpdateStaffNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.roster.UpdateStaff(context.Background(), "DOCT999", &dto.StaffRequest{
		Name: "Nobody",
		Role: "Doctor",
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestRemoveStaff(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.roster.AddStaff(ctx, &dto.StaffRequest{Name: "Dr. Sarah Mitchell", Role: "Doctor"})
	require.NoError(t, err)

	require.NoError(t, env.roster.RemoveStaff(ctx, created.ID))
	assert.ErrorIs(t, env.roster.RemoveStaff(ctx, created.ID), ErrStaffNotFound)
}

func TestRosterSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.roster.AddStaff(ctx, &dto.StaffRequest{ID: "DOCT001", Name: "Dr. Sarah Mitchell", Role: "Doctor", Detail: "Cardiology"})
	require.NoError(t, err)
	_, err = env.roster.AddStaff(ctx, &dto.StaffRequest{ID: "PHARM001", Name: "Priya Sharma", Role: "Pharmacist"})
	require.NoError(t, err)

	byName, err := env.roster.Roster(ctx, "priya")
	require.NoError(t, err)
	assert.Equal(t, 1, byName.Total)

	byDetail, err := env.roster.Roster(ctx, "cardio")
	require.NoError(t, err)
	assert.Equal(t, 1, byDetail.Total)

	byRole, err := env.roster.Roster(ctx, "pharmacist")
	require.NoError(t, err)
	assert.Equal(t, 1, byRole.Total)

	all, err := env.roster.Roster(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}

func TestDoctorsListsOnlyDoctors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.roster.AddStaff(ctx, &dto.StaffRequest{Name: "Dr. Sarah Mitchell", Role: "Doctor"})
	require.NoError(t, err)
	_, err = env.roster.AddStaff(ctx, &dto.StaffRequest{Name: "Priya Sharma", Role: "Pharmacist"})
	require.NoError(t, err)

	doctors, err := env.roster.Doctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Sarah Mitchell", doctors[0].Name)
}
