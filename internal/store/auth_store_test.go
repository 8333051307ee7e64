package store

import (
	"context"
	"testing"
	"time"

	"github.com/soireehq/soiree-api/internal/mocks"
	"github.com/soireehq/soiree-api/internal/models"
	"github.com/soireehq/soiree-api/internal/repository"
	"github.com/soireehq/soiree-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthStore() *AuthStore {
	svc := service.NewAuthService(repository.NewUserRepository(mocks.Users), 0)
	return NewAuthStore(svc, 0)
}

func TestAuthStore_Login_Success(t *testing.T) {
	s := newAuthStore()

	err := s.Login(context.Background(), "alex@example.com", "any-password")

	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
	assert.NoError(t, s.Err())
	require.NotNil(t, s.User())
	assert.Equal(t, "Alex Johnson", s.User().Name)
}

func TestAuthStore_Login_UnknownEmailStaysUnauthenticated(t *testing.T) {
	s := newAuthStore()

	err := s.Login(context.Background(), "nobody@example.com", "pw")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.ErrorIs(t, s.Err(), service.ErrInvalidCredentials)
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
	assert.Nil(t, s.User())
}

func TestAuthStore_Login_FailureKeepsPriorSession(t *testing.T) {
	s := newAuthStore()
	require.NoError(t, s.Login(context.Background(), "alex@example.com", "pw"))

	_ = s.Login(context.Background(), "nobody@example.com", "pw")

	// The prior user record survives a failed re-login; only the error
	// field reflects the failure.
	require.NotNil(t, s.User())
	assert.Equal(t, "Alex Johnson", s.User().Name)
	assert.Error(t, s.Err())
}

func TestAuthStore_Login_ClearsPriorError(t *testing.T) {
	s := newAuthStore()
	_ = s.Login(context.Background(), "nobody@example.com", "pw")
	require.Error(t, s.Err())

	require.NoError(t, s.Login(context.Background(), "alex@example.com", "pw"))
	assert.NoError(t, s.Err())
}

func TestAuthStore_LoginWithSocial_AnyProviderSignsInSeedUser(t *testing.T) {
	for _, provider := range []string{"facebook", "google"} {
		s := newAuthStore()
		require.NoError(t, s.LoginWithSocial(context.Background(), provider))
		assert.True(t, s.IsAuthenticated())
		assert.Equal(t, "Alex Johnson", s.User().Name)
	}
}

func TestAuthStore_Signup_SynthesizesFreshAccount(t *testing.T) {
	s := newAuthStore()

	err := s.Signup(context.Background(), "Riley Chen", "riley@example.com", "pw")

	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())

	user := s.User()
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Riley Chen", user.Name)
	assert.Equal(t, "riley@example.com", user.Email)
	assert.Zero(t, user.Rating)
	assert.False(t, user.IsHost)
	assert.Equal(t, time.Now().Format("2006-01-02"), user.JoinedDate)
}

func TestAuthStore_Signup_GeneratesDistinctIDs(t *testing.T) {
	a := newAuthStore()
	b := newAuthStore()
	require.NoError(t, a.Signup(context.Background(), "A", "a@example.com", "pw"))
	require.NoError(t, b.Signup(context.Background(), "B", "b@example.com", "pw"))
	assert.NotEqual(t, a.User().ID, b.User().ID)
}

func TestAuthStore_Logout_ClearsSessionLocally(t *testing.T) {
	s := newAuthStore()
	require.NoError(t, s.Login(context.Background(), "alex@example.com", "pw"))

	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestAuthStore_UpdateProfile_MergesPatch(t *testing.T) {
	s := newAuthStore()
	require.NoError(t, s.Login(context.Background(), "alex@example.com", "pw"))

	bio := "New bio"
	name := "Alex J."
	err := s.UpdateProfile(context.Background(), UserPatch{
		Name: &name,
		Bio:  &bio,
		PaymentMethods: []models.PaymentMethod{
			{ID: "pm-1", Type: models.PaymentCard, Last4: "4242", IsDefault: true},
		},
	})

	require.NoError(t, err)
	user := s.User()
	assert.Equal(t, "Alex J.", user.Name)
	assert.Equal(t, "New bio", user.Bio)
	assert.Equal(t, "alex@example.com", user.Email) // untouched
	require.Len(t, user.PaymentMethods, 1)
	assert.Equal(t, "4242", user.PaymentMethods[0].Last4)
}

func TestAuthStore_UpdateProfile_NoOpWithoutSession(t *testing.T) {
	s := newAuthStore()

	name := "Ghost"
	err := s.UpdateProfile(context.Background(), UserPatch{Name: &name})

	require.NoError(t, err)
	assert.Nil(t, s.User())
	assert.False(t, s.IsLoading())
}

func TestAuthStore_UserReturnsCopy(t *testing.T) {
	s := newAuthStore()
	require.NoError(t, s.Login(context.Background(), "alex@example.com", "pw"))

	s.User().Name = "mutated"
	assert.Equal(t, "Alex Johnson", s.User().Name)
}
