package auth

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"catalog-service/internal/domain/admin"
	"catalog-service/internal/pkg/attempts"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/jwt"
	"catalog-service/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*admin.Admin
	findCalls int
	findErr   error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byID: map[uuid.UUID]*admin.Admin{}}
}

func (r *fakeAdminRepo) add(t *testing.T, email, plain, name string) *admin.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	a := &admin.Admin{ID: uuid.New(), Email: email, PasswordHash: string(hash), Name: name, CreatedAt: time.Now()}
	r.byID[a.ID] = a
	return a
}

func (r *fakeAdminRepo) Create(_ context.Context, a *admin.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uuid.New()
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) EmailTakenByOther(_ context.Context, email string, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if a.Email == email && a.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAdminRepo) UpdateProfile(_ context.Context, id uuid.UUID, name, email string) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	a.Name, a.Email = name, email
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	a.PasswordHash = hash
	return nil
}

func (r *fakeAdminRepo) UpsertByEmail(_ context.Context, a *admin.Admin) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == a.Email {
			existing.Name, existing.PasswordHash = a.Name, a.PasswordHash
			a.ID = existing.ID
			return false, nil
		}
	}
	a.ID = uuid.New()
	r.byID[a.ID] = a
	return true, nil
}

func (r *fakeAdminRepo) ReplaceAll(_ context.Context, admins []*admin.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = map[uuid.UUID]*admin.Admin{}
	for _, a := range admins {
		a.ID = uuid.New()
		r.byID[a.ID] = a
	}
	return nil
}

type harness struct {
	svc     *AuthService
	repo    *fakeAdminRepo
	tracker *attempts.MemoryTracker
	slept   []time.Duration
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	tokens, err := jwt.LoadAndBuild(jwt.Config{Secret: "test-secret", TTL: 7 * 24 * time.Hour})
	require.NoError(t, err)

	h := &harness{
		repo:    newFakeAdminRepo(),
		tracker: attempts.NewMemoryTracker(attempts.DefaultMaxFailures, attempts.DefaultWindow),
	}
	h.svc = NewAuthService(h.repo, tokens, h.tracker, metrics.New(), zap.NewNop())

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h.svc.now = func() time.Time { return fixed }
	h.svc.sleep = func(_ context.Context, d time.Duration) { h.slept = append(h.slept, d) }
	return h
}

func requireAppError(t *testing.T, err error, status int, code string) *xerrors.Error {
	t.Helper()
	require.Error(t, err)
	appErr, ok := xerrors.AsError(err)
	require.True(t, ok, "expected typed error, got %v", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestLoginSuccess(t *testing.T) {
	h := newHarness(t)
	a := h.repo.add(t, "admin@example.com", "correct-horse", "Admin")

	resp, err := h.svc.Login(context.Background(), &admin.LoginRequest{Email: "Admin@Example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, a.ID, resp.Admin.ID)
	assert.Equal(t, "Admin", resp.Admin.Name)
	assert.NotEmpty(t, resp.Token)

	id, err := h.svc.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)
}

func TestLoginValidationSkipsStore(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Login(context.Background(), &admin.LoginRequest{Email: "", Password: "x"})
	requireAppError(t, err, http.StatusBadRequest, xerrors.CodeMissingCredentials)

	_, err = h.svc.Login(context.Background(), &admin.LoginRequest{Email: "a@b.co", Password: ""})
	requireAppError(t, err, http.StatusBadRequest, xerrors.CodeMissingCredentials)

	_, err = h.svc.Login(context.Background(), &admin.LoginRequest{Email: "not-an-email", Password: "x"})
	requireAppError(t, err, http.StatusBadRequest, xerrors.CodeInvalidEmailFormat)

	assert.Zero(t, h.repo.findCalls)
}

func TestLoginUnknownEmailMatchesWrongPassword(t *testing.T) {
	h := newHarness(t)
	h.repo.add(t, "admin@example.com", "correct-horse", "Admin")

	_, errUnknown := h.svc.Login(context.Background(), &admin.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	unknown := requireAppError(t, errUnknown, http.StatusUnauthorized, xerrors.CodeInvalidCredentials)

	_, errWrong := h.svc.Login(context.Background(), &admin.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	wrong := requireAppError(t, errWrong, http.StatusUnauthorized, xerrors.CodeInvalidCredentials)

	assert.Equal(t, unknown.Message, wrong.Message)
	assert.Equal(t, "Credenciales inválidas", wrong.Message)
}

func TestLoginPadsToFloor(t *testing.T) {
	h := newHarness(t)
	h.repo.add(t, "admin@example.com", "correct-horse", "Admin")

	_, _ = h.svc.Login(context.Background(), &admin.LoginRequest{Email: "ghost@example.com", Password: "x"})
	_, _ = h.svc.Login(context.Background(), &admin.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	_, err := h.svc.Login(context.Background(), &admin.LoginRequest{Email: "admin@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	require.Len(t, h.slept, 3)
	for _, d := range h.slept {
		assert.Equal(t, MinLoginDuration, d)
	}
}

func TestLoginNoPaddingWhenSlow(t *testing.T) {
	h := newHarness(t)
	calls := 0
	base := time.Now()
	h.svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * 300 * time.Millisecond)
	}

	_, _ = h.svc.Login(context.Background(), &admin.LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.Empty(t, h.slept)
}

func TestLoginLockout(t *testing.T) {
	h := newHarness(t)
	h.repo.add(t, "admin@example.com", "correct-horse", "Admin")

	for i := 0; i < attempts.DefaultMaxFailures; i++ {
		_, err := h.svc.Login(context.Background(), &admin.LoginRequest{Email: "admin@example.com", Password: "wrong"})
		requireAppError(t, err, http.StatusUnauthorized, xerrors.CodeInvalidCredentials)
	}
	callsBefore := h.repo.findCalls

	// Even the right password is refused while locked.
	_, err := h.svc.Login(context.Background(), &admin.LoginRequest{Email: "ADMIN@example.com", Password: "correct-horse"})
	appErr := requireAppError(t, err, http.StatusTooManyRequests, xerrors.CodeAccountLocked)

	minutes, ok := appErr.Details["remaining_minutes"].(int)
	require.True(t, ok)
	assert.Greater(t, minutes, 0)
	assert.LessOrEqual(t, minutes, 15)
	assert.Contains(t, appErr.Message, "Cuenta bloqueada temporalmente")
	assert.Equal(t, callsBefore, h.repo.findCalls)
}

func TestLoginSuccessResetsFailures(t *testing.T) {
	h := newHarness(t)
	h.repo.add(t, "admin@example.com", "correct-horse", "Admin")

	for i := 0; i < attempts.DefaultMaxFailures-1; i++ {
		_, _ = h.svc.Login(context.Background(), &admin.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	}
	_, err := h.svc.Login(context.Background(), &admin.LoginRequest{Email: "admin@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	st, err := h.tracker.Check(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Zero(t, st.Failures)
}

func TestLoginStoreFailure(t *testing.T) {
	h := newHarness(t)
	h.repo.findErr = errors.New("connection refused")

	_, err := h.svc.Login(context.Background(), &admin.LoginRequest{Email: "admin@example.com", Password: "x"})
	appErr := requireAppError(t, err, http.StatusInternalServerError, xerrors.CodeUpstream)
	assert.NotContains(t, appErr.Message, "connection refused")
	assert.Len(t, h.slept, 1)
}

func TestValidateToken(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.ValidateToken(context.Background(), "a.b.c")
	requireAppError(t, err, http.StatusUnauthorized, xerrors.CodeInvalidToken)

	expired, err := jwt.LoadAndBuild(jwt.Config{Secret: "test-secret", TTL: time.Nanosecond})
	require.NoError(t, err)
	token, _, err := expired.Generator.Generate(uuid.NewString())
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = h.svc.ValidateToken(context.Background(), token)
	requireAppError(t, err, http.StatusUnauthorized, xerrors.CodeSessionExpired)

	notUUID, _, err := h.svc.tokens.Generator.Generate("admin-1")
	require.NoError(t, err)
	_, err = h.svc.ValidateToken(context.Background(), notUUID)
	requireAppError(t, err, http.StatusUnauthorized, xerrors.CodeInvalidToken)
}

func TestProfile(t *testing.T) {
	h := newHarness(t)
	a := h.repo.add(t, "admin@example.com", "correct-horse", "Admin")
	h.repo.add(t, "other@example.com", "correct-horse", "Other")

	info, err := h.svc.GetProfile(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", info.Email)

	_, err = h.svc.GetProfile(context.Background(), uuid.New())
	requireAppError(t, err, http.StatusNotFound, xerrors.CodeNotFound)

	_, err = h.svc.UpdateProfile(context.Background(), a.ID, &admin.UpdateProfileRequest{Name: "X", Email: "Other@Example.com"})
	requireAppError(t, err, http.StatusBadRequest, xerrors.CodeEmailInUse)

	_, err = h.svc.UpdateProfile(context.Background(), a.ID, &admin.UpdateProfileRequest{Name: "", Email: "a@b.co"})
	requireAppError(t, err, http.StatusBadRequest, xerrors.CodeMissingFields)

	info, err = h.svc.UpdateProfile(context.Background(), a.ID, &admin.UpdateProfileRequest{Name: " <b>Jefe</b> ", Email: "Jefe@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "bJefe/b", info.Name)
	assert.Equal(t, "jefe@example.com", info.Email)
}

func TestChangePassword(t *testing.T) {
	h := newHarness(t)
	a := h.repo.add(t, "admin@example.com", "correct-horse", "Admin")
	ctx := context.Background()

	err := h.svc.ChangePassword(ctx, a.ID, &admin.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "abcdefgh", ConfirmPassword: "abcdefgX"})
	requireAppError(t, err, http.StatusBadRequest, xerrors.CodePasswordMismatch)

	err = h.svc.ChangePassword(ctx, a.ID, &admin.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "short", ConfirmPassword: "short"})
	requireAppError(t, err, http.StatusBadRequest, xerrors.CodeWeakPassword)

	err = h.svc.ChangePassword(ctx, a.ID, &admin.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-password", ConfirmPassword: "new-password"})
	requireAppError(t, err, http.StatusUnauthorized, xerrors.CodeWrongPassword)

	err = h.svc.ChangePassword(ctx, a.ID, &admin.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "new-password", ConfirmPassword: "new-password"})
	require.NoError(t, err)

	stored := h.repo.byID[a.ID].PasswordHash
	cost, err := bcrypt.Cost([]byte(stored))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("new-password")))
}

func TestEnsureAdmin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	created, err := h.svc.EnsureAdmin(ctx, admin.Seed{Email: "Admin@Example.com", Password: "Admin123!", Name: "Administrador"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = h.svc.EnsureAdmin(ctx, admin.Seed{Email: "admin@example.com", Password: "Changed123!", Name: "Otro"})
	require.NoError(t, err)
	assert.False(t, created)
	require.Len(t, h.repo.byID, 1)

	for _, a := range h.repo.byID {
		assert.Equal(t, "Otro", a.Name)
		cost, err := bcrypt.Cost([]byte(a.PasswordHash))
		require.NoError(t, err)
		assert.Equal(t, 10, cost)
	}

	_, err = h.svc.EnsureAdmin(ctx, admin.Seed{Email: "bad", Password: "Admin123!", Name: "X"})
	assert.Error(t, err)
}

func TestResetAdmins(t *testing.T) {
	h := newHarness(t)
	h.repo.add(t, "old@example.com", "old-password", "Old")

	infos, err := h.svc.ResetAdmins(context.Background(), []admin.Seed{
		{Email: "admin@example.com", Password: "Primary#2024", Name: "Principal"},
		{Email: "backup@example.com", Password: "Backup#2024", Name: "Backup"},
	})
	require.NoError(t, err)
	assert.Len(t, infos, 2)
	require.Len(t, h.repo.byID, 2)
	for _, a := range h.repo.byID {
		assert.NotEqual(t, "old@example.com", a.Email)
		cost, err := bcrypt.Cost([]byte(a.PasswordHash))
		require.NoError(t, err)
		assert.Equal(t, 12, cost)
	}

	_, err = h.svc.ResetAdmins(context.Background(), []admin.Seed{
		{Email: "a@example.com", Password: "Password1", Name: "A"},
		{Email: "A@example.com", Password: "Password2", Name: "B"},
	})
	assert.Error(t, err)
}
