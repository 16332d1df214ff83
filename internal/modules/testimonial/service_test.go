package testimonial

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
		repository.NewTestimonialRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func TestSubmit_CreatesPendingWithNotification(t *testing.T) {
	svc, db := setupService(t)

	tst, err := svc.Submit(context.Background(), SubmitRequest{
		Name:     "Mara V.",
		Location: "Berlin, Germany",
		Rating:   5,
		Text:     "Stunning work.",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TestimonialPending, tst.Status)
	assert.Equal(t, "Form", tst.Source)
	assert.Nil(t, tst.ProductID)

	var n domain.Notification
	require.NoError(t, db.First(&n, "type = ?", domain.NotifTestimonial).Error)
	require.NotNil(t, n.ReferenceID)
	assert.Equal(t, tst.ID, *n.ReferenceID)
}

func TestSubmit_MatchesProductByName(t *testing.T) {
	svc, db := setupService(t)

	p := &domain.Product{Slug: "the-void-pendant", Name: "The Void Pendant", IsAvailable: true, Status: domain.ProductActive}
	require.NoError(t, db.Create(p).Error)

	tst, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "Kai S.",
		Rating:  5,
		Text:    "Love it.",
		Product: "void pendant",
	})
	require.NoError(t, err)
	require.NotNil(t, tst.ProductID)
	assert.Equal(t, p.ID, *tst.ProductID)
}

func TestSubmit_UnknownProductNameIsNotAnError(t *testing.T) {
	svc, _ := setupService(t)

	tst, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "Lena R.",
		Rating:  4,
		Text:    "Beautiful.",
		Product: "No Such Piece",
	})
	require.NoError(t, err)
	assert.Nil(t, tst.ProductID)
}

func TestSubmit_RatingOutOfRange(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Submit(context.Background(), SubmitRequest{Name: "X", Rating: 6, Text: "T"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Submit(context.Background(), SubmitRequest{Name: "X", Rating: 0, Text: "T"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_StatusAndHomepage(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	tst := &domain.Testimonial{Name: "Anya T.", Rating: 5, Text: "Sacred process.", Status: domain.TestimonialPending}
	require.NoError(t, db.Create(tst).Error)

	approved := string(domain.TestimonialApproved)
	show := true
	updated, err := svc.Update(ctx, tst.ID, UpdateRequest{Status: &approved, ShowOnHomepage: &show})
	require.NoError(t, err)
	assert.Equal(t, domain.TestimonialApproved, updated.Status)
	assert.True(t, updated.ShowOnHomepage)

	// Reversal is allowed.
	rejected := string(domain.TestimonialRejected)
	updated, err = svc.Update(ctx, tst.ID, UpdateRequest{Status: &rejected})
	require.NoError(t, err)
	assert.Equal(t, domain.TestimonialRejected, updated.Status)
	assert.True(t, updated.ShowOnHomepage, "homepage flag untouched when only status changes")
}

func TestUpdate_InvalidStatus(t *testing.T) {
	svc, db := setupService(t)

	tst := &domain.Testimonial{Name: "X", Rating: 5, Text: "T", Status: domain.TestimonialPending}
	require.NoError(t, db.Create(tst).Error)

	bogus := "Bogus"
	_, err := svc.Update(context.Background(), tst.ID, UpdateRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdate_EmptyRequest(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Update(context.Background(), "any", UpdateRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListPublic_OnlyApproved(t *testing.T) {
	svc, db := setupService(t)

	seed := []domain.Testimonial{
		{Name: "A", Rating: 5, Text: "T", Status: domain.TestimonialApproved},
		{Name: "B", Rating: 4, Text: "T", Status: domain.TestimonialPending},
		{Name: "C", Rating: 3, Text: "T", Status: domain.TestimonialRejected},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	public, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "A", public[0].Name)
}
