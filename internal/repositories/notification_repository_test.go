package repositories

import (
	"fmt"
	"testing"

	"github.com/campuskart/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	t.Run("owner can mark read, repeat calls succeed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostgresNotificationRepository(db)

		n := &models.Notification{UserID: 1, Type: "message", Title: "New message"}
		require.NoError(t, repo.CreateNotification(n))

		require.NoError(t, repo.MarkAsRead(n.ID, 1))
		require.NoError(t, repo.MarkAsRead(n.ID, 1), "mark-read is idempotent")

		var read models.Notification
		require.NoError(t, db.First(&read, n.ID).Error)
		assert.True(t, read.IsRead)
	})

	t.Run("someone else's notification is not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostgresNotificationRepository(db)

		n := &models.Notification{UserID: 1, Type: "message", Title: "New message"}
		require.NoError(t, repo.CreateNotification(n))

		err := repo.MarkAsRead(n.ID, 2)

		assert.ErrorIs(t, err, ErrNotFound)
		var unread models.Notification
		require.NoError(t, db.First(&unread, n.ID).Error)
		assert.False(t, unread.IsRead, "row must be unchanged")
	})
}

func TestNotificationRepository_MarkAllAsRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateNotification(&models.Notification{UserID: 1, Type: "message", Title: fmt.Sprintf("n%d", i)}))
	}
	require.NoError(t, repo.CreateNotification(&models.Notification{UserID: 2, Type: "message", Title: "other user"}))

	require.NoError(t, repo.MarkAllAsRead(1))

	var unreadMine, unreadOther int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = false", 1).Count(&unreadMine)
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = false", 2).Count(&unreadOther)
	assert.Zero(t, unreadMine)
	assert.EqualValues(t, 1, unreadOther, "other users' notifications stay unread")
}

func TestNotificationRepository_GetByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)

	for i := 0; i < 55; i++ {
		require.NoError(t, repo.CreateNotification(&models.Notification{UserID: 1, Type: "message", Title: fmt.Sprintf("n%d", i)}))
	}

	notifications, err := repo.GetByUserID(1)

	require.NoError(t, err)
	assert.Len(t, notifications, 50, "inbox is capped at the 50 most recent")
}
