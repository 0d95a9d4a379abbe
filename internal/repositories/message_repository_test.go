package repositories

import (
	"testing"
	"time"

	"github.com/campuskart/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createMessageAt(t *testing.T, db *gorm.DB, sender, receiver, listing uint, content string, at time.Time) {
	t.Helper()

	msg := &models.Message{SenderID: sender, ReceiverID: receiver, ListingID: listing, Content: content, CreatedAt: at}
	require.NoError(t, db.Create(msg).Error, "failed to create test message")
}

func TestMessageRepository_GetConversations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresMessageRepository(db)

	alice := createTestUser(t, db, "alice@thapar.edu", "Alice")
	bob := createTestUser(t, db, "bob@thapar.edu", "Bob")
	carol := createTestUser(t, db, "carol@thapar.edu", "Carol")

	lamp := &models.Listing{SellerID: alice.ID, Title: "Desk Lamp", Price: 450, Type: models.TypePhysical, CategoryID: 3, Status: models.StatusActive}
	notes := &models.Listing{SellerID: alice.ID, Title: "DBMS Notes", Price: 50, Type: models.TypeDigital, CategoryID: 4, Status: models.StatusActive}
	require.NoError(t, db.Create(lamp).Error)
	require.NoError(t, db.Create(notes).Error)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	// Bob asks about the lamp, Alice replies; Bob also asks about the notes;
	// Carol asks about the lamp last
	createMessageAt(t, db, bob.ID, alice.ID, lamp.ID, "Is the lamp available?", base)
	createMessageAt(t, db, alice.ID, bob.ID, lamp.ID, "Yes, still here", base.Add(1*time.Minute))
	createMessageAt(t, db, bob.ID, alice.ID, notes.ID, "Do the notes cover unit 4?", base.Add(2*time.Minute))
	createMessageAt(t, db, carol.ID, alice.ID, lamp.ID, "Would you take 400?", base.Add(3*time.Minute))

	t.Run("one entry per partner and listing, newest first", func(t *testing.T) {
		conversations, err := repo.GetConversations(alice.ID)

		require.NoError(t, err)
		require.Len(t, conversations, 3, "distinct (partner, listing) pairs")

		// Newest thread first: Carol about the lamp
		assert.Equal(t, carol.ID, conversations[0].PartnerID)
		assert.Equal(t, "Carol", conversations[0].PartnerName)
		assert.Equal(t, lamp.ID, conversations[0].ListingID)
		assert.Equal(t, "Would you take 400?", conversations[0].Content)

		// Then Bob about the notes
		assert.Equal(t, bob.ID, conversations[1].PartnerID)
		assert.Equal(t, notes.ID, conversations[1].ListingID)
		assert.Equal(t, "Do the notes cover unit 4?", conversations[1].Content)

		// Then Bob about the lamp, showing the latest message of the thread
		assert.Equal(t, bob.ID, conversations[2].PartnerID)
		assert.Equal(t, lamp.ID, conversations[2].ListingID)
		assert.Equal(t, "Yes, still here", conversations[2].Content)
		assert.Equal(t, "Desk Lamp", conversations[2].ListingTitle)
		assert.Equal(t, 450.0, conversations[2].ListingPrice)
	})

	t.Run("partner perspective", func(t *testing.T) {
		conversations, err := repo.GetConversations(bob.ID)

		require.NoError(t, err)
		require.Len(t, conversations, 2)
		for _, conv := range conversations {
			assert.Equal(t, alice.ID, conv.PartnerID, "Bob only talks to Alice")
			assert.Equal(t, "Alice", conv.PartnerName)
		}
	})

	t.Run("no messages yields empty result", func(t *testing.T) {
		outsider := createTestUser(t, db, "dan@thapar.edu", "Dan")

		conversations, err := repo.GetConversations(outsider.ID)

		require.NoError(t, err)
		assert.Empty(t, conversations)
	})
}

func TestMessageRepository_GetThread(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresMessageRepository(db)

	alice := createTestUser(t, db, "alice@thapar.edu", "Alice")
	bob := createTestUser(t, db, "bob@thapar.edu", "Bob")
	carol := createTestUser(t, db, "carol@thapar.edu", "Carol")

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	createMessageAt(t, db, bob.ID, alice.ID, 1, "Is the lamp available?", base)
	createMessageAt(t, db, alice.ID, bob.ID, 1, "Yes, still here", base.Add(1*time.Minute))
	createMessageAt(t, db, carol.ID, alice.ID, 1, "Would you take 400?", base.Add(2*time.Minute))
	createMessageAt(t, db, bob.ID, alice.ID, 2, "Different listing", base.Add(3*time.Minute))

	t.Run("full history oldest first, scoped to the pair and listing", func(t *testing.T) {
		thread, err := repo.GetThread(alice.ID, bob.ID, 1)

		require.NoError(t, err)
		require.Len(t, thread, 2, "Carol's message and the other listing are excluded")
		assert.Equal(t, "Is the lamp available?", thread[0].Content)
		assert.Equal(t, "Bob", thread[0].SenderName)
		assert.Equal(t, "Yes, still here", thread[1].Content)
		assert.Equal(t, "Alice", thread[1].SenderName)
	})

	t.Run("direction does not matter", func(t *testing.T) {
		fromAlice, err := repo.GetThread(alice.ID, bob.ID, 1)
		require.NoError(t, err)
		fromBob, err := repo.GetThread(bob.ID, alice.ID, 1)
		require.NoError(t, err)

		assert.Equal(t, fromAlice, fromBob)
	})
}
