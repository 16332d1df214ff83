package notification

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

	svc := NewService(
		repository.NewNotificationRepository(db),
		repository.NewContactMessageRepository(db),
		repository.NewTestimonialRepository(db),
	)
	return svc, db
}

func TestFeed_SplitsTypesAndJoinsRatings(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	msg := &domain.ContactMessage{Name: "Jordan", Email: "jordan@example.com", Subject: "Custom ring", Message: "Can you make one?", Status: domain.MessageNew}
	require.NoError(t, db.Create(msg).Error)
	require.NoError(t, db.Create(domain.NewContactNotification(msg)).Error)

	tst := &domain.Testimonial{Name: "Mara V.", Rating: 4, Text: "Lovely piece", Status: domain.TestimonialPending}
	require.NoError(t, db.Create(tst).Error)
	require.NoError(t, db.Create(domain.NewTestimonialNotification(tst)).Error)

	feed, err := svc.Feed(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, feed.Count)
	require.Len(t, feed.ContactItems, 1)
	require.Len(t, feed.TestimonialItems, 1)
	assert.Contains(t, feed.ContactItems[0].Name, "Jordan")
	assert.Equal(t, "Custom ring", feed.ContactItems[0].Subject)
	assert.Equal(t, 4, feed.TestimonialItems[0].Rating)
}

func TestFeed_DanglingTestimonialShowsZeroRating(t *testing.T) {
	svc, db := setupService(t)

	tst := &domain.Testimonial{Name: "Gone", Rating: 5, Text: "Deleted later", Status: domain.TestimonialPending}
	require.NoError(t, db.Create(tst).Error)
	require.NoError(t, db.Create(domain.NewTestimonialNotification(tst)).Error)
	require.NoError(t, db.Delete(&domain.Testimonial{}, "id = ?", tst.ID).Error)

	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed.TestimonialItems, 1)
	assert.Equal(t, 0, feed.TestimonialItems[0].Rating)
}

func TestMarkRead_Idempotent(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	n := domain.NewSystemNotification("ref-1", "Hello", "Body")
	require.NoError(t, db.Create(n).Error)

	require.NoError(t, svc.MarkRead(ctx, n.ID))
	// Second call on an already-read row still succeeds.
	require.NoError(t, svc.MarkRead(ctx, n.ID))

	var stored domain.Notification
	require.NoError(t, db.First(&stored, "id = ?", n.ID).Error)
	assert.True(t, stored.IsRead)
}

func TestMarkRead_UnknownID(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.MarkRead(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkRead_EmptyID(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.MarkRead(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarkAllRead(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(domain.NewSystemNotification("ref", "T", "B")).Error)
	}

	require.NoError(t, svc.MarkAllRead(ctx))

	var unread int64
	require.NoError(t, db.Model(&domain.Notification{}).Where("is_read = ?", false).Count(&unread).Error)
	assert.Zero(t, unread)

	// Nothing unread left, still no error.
	require.NoError(t, svc.MarkAllRead(ctx))
}

func TestApproveTestimonial_EmitsOneSystemNotification(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	tst := &domain.Testimonial{Name: "Kai S.", Rating: 5, Text: "Great", Status: domain.TestimonialPending}
	require.NoError(t, db.Create(tst).Error)

	require.NoError(t, svc.ApproveTestimonial(ctx, tst.ID))

	var stored domain.Testimonial
	require.NoError(t, db.First(&stored, "id = ?", tst.ID).Error)
	assert.Equal(t, domain.TestimonialApproved, stored.Status)

	var systemCount int64
	require.NoError(t, db.Model(&domain.Notification{}).
		Where("type = ?", domain.NotifSystem).
		Count(&systemCount).Error)
	assert.Equal(t, int64(1), systemCount)
}

func TestRejectTestimonial(t *testing.T) {
	svc, db := setupService(t)

	tst := &domain.Testimonial{Name: "Sofia M.", Rating: 5, Text: "Nice", Status: domain.TestimonialPending}
	require.NoError(t, db.Create(tst).Error)

	require.NoError(t, svc.RejectTestimonial(context.Background(), tst.ID))

	var stored domain.Testimonial
	require.NoError(t, db.First(&stored, "id = ?", tst.ID).Error)
	assert.Equal(t, domain.TestimonialRejected, stored.Status)
}

func TestApproveTestimonial_UnknownLeavesNoNotification(t *testing.T) {
	svc, db := setupService(t)

	err := svc.ApproveTestimonial(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMarkMessageRead(t *testing.T) {
	svc, db := setupService(t)

	msg := &domain.ContactMessage{Name: "A", Email: "a@b.c", Subject: "S", Message: "M", Status: domain.MessageNew}
	require.NoError(t, db.Create(msg).Error)

	require.NoError(t, svc.MarkMessageRead(context.Background(), msg.ID))

	var stored domain.ContactMessage
	require.NoError(t, db.First(&stored, "id = ?", msg.ID).Error)
	assert.Equal(t, domain.MessageRead, stored.Status)
}

func TestDetail_ResolvesContactMessage(t *testing.T) {
	svc, db := setupService(t)

	msg := &domain.ContactMessage{Name: "Jordan", Email: "j@e.com", Subject: "Hi", Message: "Body", Status: domain.MessageNew}
	require.NoError(t, db.Create(msg).Error)
	n := domain.NewContactNotification(msg)
	require.NoError(t, db.Create(n).Error)

	entity, err := svc.Detail(context.Background(), n.ID, domain.NotifContact)
	require.NoError(t, err)

	got, ok := entity.(*domain.ContactMessage)
	require.True(t, ok)
	assert.Equal(t, msg.ID, got.ID)
}

func TestDetail_DanglingReference(t *testing.T) {
	svc, db := setupService(t)

	msg := &domain.ContactMessage{Name: "Gone", Email: "g@e.com", Subject: "S", Message: "M", Status: domain.MessageNew}
	require.NoError(t, db.Create(msg).Error)
	n := domain.NewContactNotification(msg)
	require.NoError(t, db.Create(n).Error)
	require.NoError(t, db.Delete(&domain.ContactMessage{}, "id = ?", msg.ID).Error)

	_, err := svc.Detail(context.Background(), n.ID, domain.NotifContact)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDetail_NoReference(t *testing.T) {
	svc, db := setupService(t)

	n := &domain.Notification{Type: domain.NotifSystem, Title: "T", Body: "B"}
	require.NoError(t, db.Create(n).Error)

	_, err := svc.Detail(context.Background(), n.ID, domain.NotifSystem)
	assert.ErrorIs(t, err, ErrNoReference)
}
