package auth

import (
	"context"
	"testing"
	"time"

	"alienic/internal/database"
	"alienic/internal/domain"
	"alienic/internal/pkg/jwt"
	"alienic/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB, *jwt.Service) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	tokens := jwt.New("test-secret-at-least-32-characters", time.Hour)
	return NewService(repository.NewAdminUserRepository(db), tokens), db, tokens
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) *domain.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &domain.AdminUser{Email: email, HashedPassword: string(hash)}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func TestLogin_Success(t *testing.T) {
	svc, db, tokens := setupService(t)
	admin := seedAdmin(t, db, "admin@alienic.studio", "correct-horse")

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@alienic.studio",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, res.Admin.ID)
	require.NotEmpty(t, res.Token)

	claims, err := tokens.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
}

func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	svc, db, _ := setupService(t)
	seedAdmin(t, db, "admin@alienic.studio", "correct-horse")

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Admin@Alienic.Studio",
		Password: "correct-horse",
	})
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, db, _ := setupService(t)
	seedAdmin(t, db, "admin@alienic.studio", "correct-horse")

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@alienic.studio",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@alienic.studio",
		Password: "whatever",
	})
	// Same error as a wrong password so the endpoint does not leak accounts.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	svc, db, _ := setupService(t)
	admin := seedAdmin(t, db, "admin@alienic.studio", "pw-not-checked")

	profile, err := svc.Profile(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, profile.Email)

	_, err = svc.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
