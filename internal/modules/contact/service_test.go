package contact

import (
	"context"
	"testing"

	"alienic/internal/database"
	"alienic/internal/domain"
	"alienic/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewService(repository.NewContactMessageRepository(db)), db
}

func TestSubmit_CreatesMessageAndNotification(t *testing.T) {
	svc, db := setupService(t)

	msg, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Subject: "Custom commission",
		Message: "I'd like a custom pendant.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, msg.ID)
	assert.Equal(t, domain.MessageNew, msg.Status)

	var n domain.Notification
	require.NoError(t, db.First(&n, "type = ?", domain.NotifContact).Error)
	require.NotNil(t, n.ReferenceID)
	assert.Equal(t, msg.ID, *n.ReferenceID)
	assert.Contains(t, n.Title, "Jordan")
	assert.Equal(t, "Custom commission", n.Body)
	assert.False(t, n.IsRead)
}

func TestSetStatus_FreelySettable(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	msg := &domain.ContactMessage{Name: "A", Email: "a@b.c", Subject: "S", Message: "M", Status: domain.MessageNew}
	require.NoError(t, db.Create(msg).Error)

	require.NoError(t, svc.SetStatus(ctx, msg.ID, domain.MessageRead))
	require.NoError(t, svc.SetStatus(ctx, msg.ID, domain.MessageArchived))
	// Back out of the archive is allowed.
	require.NoError(t, svc.SetStatus(ctx, msg.ID, domain.MessageRead))

	var stored domain.ContactMessage
	require.NoError(t, db.First(&stored, "id = ?", msg.ID).Error)
	assert.Equal(t, domain.MessageRead, stored.Status)
}

func TestSetStatus_Invalid(t *testing.T) {
	svc, db := setupService(t)

	msg := &domain.ContactMessage{Name: "A", Email: "a@b.c", Subject: "S", Message: "M", Status: domain.MessageNew}
	require.NoError(t, db.Create(msg).Error)

	err := svc.SetStatus(context.Background(), msg.ID, domain.MessageStatus("Bogus"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatus_Unknown(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.SetStatus(context.Background(), "missing", domain.MessageRead)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_FiltersAndSorts(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	seed := []domain.ContactMessage{
		{Name: "Alice", Email: "alice@example.com", Subject: "Ring sizing", Message: "M", Status: domain.MessageNew},
		{Name: "Bob", Email: "bob@example.com", Subject: "Shipping", Message: "M", Status: domain.MessageRead},
		{Name: "Carol", Email: "carol@example.com", Subject: "Ring repair", Message: "M", Status: domain.MessageArchived},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	byStatus, total, err := svc.List(ctx, repository.MessageFilters{Status: domain.MessageNew})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Alice", byStatus[0].Name)

	bySearch, total, err := svc.List(ctx, repository.MessageFilters{Search: "ring"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, bySearch, 2)

	sorted, _, err := svc.List(ctx, repository.MessageFilters{SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Alice", sorted[0].Name)
	assert.Equal(t, "Carol", sorted[2].Name)
}

func TestDelete(t *testing.T) {
	svc, db := setupService(t)

	msg := &domain.ContactMessage{Name: "A", Email: "a@b.c", Subject: "S", Message: "M", Status: domain.MessageNew}
	require.NoError(t, db.Create(msg).Error)

	require.NoError(t, svc.Delete(context.Background(), msg.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), msg.ID), ErrNotFound)
}
