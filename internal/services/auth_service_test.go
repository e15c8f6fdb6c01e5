package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"firstcab/internal/config"
	"firstcab/internal/models"
	"firstcab/internal/utils"
	"firstcab/pkg/oauth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeUserRepo) GetBySocialID(ctx context.Context, provider models.AuthProvider, socialID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Provider == provider && u.SocialID == socialID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err != nil {
		if utils.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (f *fakeUserRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.User
	for _, u := range f.users {
		clone := *u
		result = append(result, &clone)
	}
	return result, int64(len(result)), nil
}

func (f *fakeUserRepo) GetByRole(ctx context.Context, role models.UserRole, params *utils.PaginationParams) ([]*models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.User
	for _, u := range f.users {
		if u.Role == role {
			clone := *u
			result = append(result, &clone)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

type fakeOAuthProvider struct {
	info *oauth.UserInfo
	err  error
}

func (f *fakeOAuthProvider) GetUserInfo(ctx context.Context, accessToken string) (*oauth.UserInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func (f *fakeOAuthProvider) RevokeToken(ctx context.Context, token string) error {
	return nil
}

type authFixture struct {
	repo    *fakeUserRepo
	oauth   *fakeOAuthProvider
	service AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	repo := newFakeUserRepo()
	provider := &fakeOAuthProvider{}
	cfg := &config.SecurityConfig{JWTSecret: "test-secret"}
	return &authFixture{
		repo:    repo,
		oauth:   provider,
		service: NewAuthService(repo, provider, cfg, newTestLogger(t)),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	f := newAuthFixture(t)

	registered, err := f.service.Register(context.Background(), "new@example.com", "Str0ngPass!", "New Rider")
	require.NoError(t, err)
	require.NotNil(t, registered.Tokens)
	assert.NotEmpty(t, registered.Tokens.AccessToken)
	assert.Equal(t, models.UserRoleCustomer, registered.User.Role)
	assert.Equal(t, models.AuthProviderEmail, registered.User.Provider)
	assert.NotEqual(t, "Str0ngPass!", registered.User.Password)

	loggedIn, err := f.service.Login(context.Background(), "new@example.com", "Str0ngPass!")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(context.Background(), "dup@example.com", "Str0ngPass!", "First")
	require.NoError(t, err)

	_, err = f.service.Register(context.Background(), "dup@example.com", "Str0ngPass!", "Second")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(context.Background(), "rider@example.com", "Str0ngPass!", "Rider")
	require.NoError(t, err)

	_, err = f.service.Login(context.Background(), "rider@example.com", "wrong")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	// Unknown email yields the same error as a wrong password.
	_, err = f.service.Login(context.Background(), "nobody@example.com", "Str0ngPass!")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestGoogleLoginCreatesUserOnce(t *testing.T) {
	f := newAuthFixture(t)
	f.oauth.info = &oauth.UserInfo{
		ID:      "google-123",
		Email:   "g@example.com",
		Name:    "G Rider",
		Picture: "https://example.com/p.png",
	}

	first, err := f.service.GoogleLogin(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, models.AuthProviderGoogle, first.User.Provider)
	assert.Equal(t, "google-123", first.User.SocialID)

	second, err := f.service.GoogleLogin(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)

	users, total, err := f.repo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, users, 1)
}

func TestGoogleLoginRejectsBadToken(t *testing.T) {
	f := newAuthFixture(t)
	f.oauth.err = errors.New("invalid token")

	_, err := f.service.GoogleLogin(context.Background(), "bad")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestSubscribeSeesSignInAndSignOut(t *testing.T) {
	f := newAuthFixture(t)
	events := f.service.Subscribe()

	registered, err := f.service.Register(context.Background(), "sub@example.com", "Str0ngPass!", "Sub")
	require.NoError(t, err)

	event := <-events
	assert.Equal(t, AuthEventSignIn, event.Type)
	require.NotNil(t, event.User)
	assert.Equal(t, registered.User.ID, event.User.ID)

	require.NoError(t, f.service.Logout(context.Background(), registered.User.ID))

	event = <-events
	assert.Equal(t, AuthEventSignOut, event.Type)
}
