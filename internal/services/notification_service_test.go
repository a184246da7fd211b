package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
)

func newNotificationFixture(t *testing.T) (*NotificationService, *fakeNotificationRepo, *fakeUserRepo) {
	notificationRepo := &fakeNotificationRepo{}
	userRepo := &fakeUserRepo{}
	svc := NewNotificationService(notificationRepo, userRepo, newTestLogger(t))
	return svc, notificationRepo, userRepo
}

func TestSendNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("targeted", func(t *testing.T) {
		svc, notificationRepo, userRepo := newNotificationFixture(t)
		user := &models.User{Username: "alice", Email: "alice@example.com"}
		require.NoError(t, userRepo.Create(ctx, user))

		require.NoError(t, svc.Send(ctx, user.ID, "hello"))
		require.Len(t, notificationRepo.notifications, 1)
		assert.Equal(t, user.ID, notificationRepo.notifications[0].UserID)
	})

	t.Run("targeted to unknown user", func(t *testing.T) {
		svc, _, _ := newNotificationFixture(t)
		err := svc.Send(ctx, primitive.NewObjectID(), "hello")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("broadcast creates one record per user", func(t *testing.T) {
		svc, notificationRepo, userRepo := newNotificationFixture(t)
		for _, name := range []string{"alice", "bob", "carol"} {
			require.NoError(t, userRepo.Create(ctx, &models.User{Username: name, Email: name + "@example.com"}))
		}

		require.NoError(t, svc.Send(ctx, primitive.NilObjectID, "maintenance tonight"))
		assert.Len(t, notificationRepo.notifications, 3)
	})
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	svc, notificationRepo, userRepo := newNotificationFixture(t)

	user := &models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, userRepo.Create(ctx, user))
	require.NoError(t, svc.Notify(ctx, user.ID, "hello"))
	notification := notificationRepo.notifications[0]

	t.Run("owner can mark read", func(t *testing.T) {
		require.NoError(t, svc.MarkRead(ctx, notification.ID, user.ID))
		assert.True(t, notification.IsRead)
	})

	t.Run("someone else's notification is not found", func(t *testing.T) {
		err := svc.MarkRead(ctx, notification.ID, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})
}

func TestListNotifications(t *testing.T) {
	ctx := context.Background()
	svc, _, userRepo := newNotificationFixture(t)

	user := &models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, userRepo.Create(ctx, user))
	require.NoError(t, svc.Notify(ctx, user.ID, "first"))
	require.NoError(t, svc.Notify(ctx, user.ID, "second"))

	notifications, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Message)
}
