package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
)

func newAdminFixture(t *testing.T) (*AdminService, *fakeVehicleRepo, *fakeNotificationRepo) {
	vehicleRepo := &fakeVehicleRepo{}
	notificationRepo := &fakeNotificationRepo{}
	svc := NewAdminService(vehicleRepo, notificationRepo, newTestLogger(t))
	return svc, vehicleRepo, notificationRepo
}

func TestListPending(t *testing.T) {
	ctx := context.Background()
	svc, vehicleRepo, _ := newAdminFixture(t)

	pending := &models.Vehicle{UserID: primitive.NewObjectID(), Model: "Honda City"}
	approved := &models.Vehicle{UserID: primitive.NewObjectID(), Model: "Yamaha FZ", IsApproved: true, LicenseDocument: "doc.pdf"}
	require.NoError(t, vehicleRepo.Create(ctx, pending))
	require.NoError(t, vehicleRepo.Create(ctx, approved))

	vehicles, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, pending.ID, vehicles[0].ID)
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("sets the flag and notifies the owner", func(t *testing.T) {
		svc, vehicleRepo, notificationRepo := newAdminFixture(t)
		ownerID := primitive.NewObjectID()
		vehicle := &models.Vehicle{UserID: ownerID, Model: "Honda City"}
		require.NoError(t, vehicleRepo.Create(ctx, vehicle))

		require.NoError(t, svc.Approve(ctx, vehicle.ID))

		stored, err := vehicleRepo.GetByID(ctx, vehicle.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsApproved)

		require.Len(t, notificationRepo.notifications, 1)
		assert.Equal(t, ownerID, notificationRepo.notifications[0].UserID)
		assert.Equal(t, "Your vehicle 'Honda City' has been approved!", notificationRepo.notifications[0].Message)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		svc, _, _ := newAdminFixture(t)
		err := svc.Approve(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("notification failure does not fail the approval", func(t *testing.T) {
		svc, vehicleRepo, notificationRepo := newAdminFixture(t)
		vehicle := &models.Vehicle{UserID: primitive.NewObjectID(), Model: "Honda City"}
		require.NoError(t, vehicleRepo.Create(ctx, vehicle))
		notificationRepo.createErr = assert.AnError

		require.NoError(t, svc.Approve(ctx, vehicle.ID))

		stored, err := vehicleRepo.GetByID(ctx, vehicle.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsApproved)
	})
}
