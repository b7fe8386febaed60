// doubles_test.go provides the in-memory fakes and spies used across the
// user interactor tests.
package user

import (
	"context"
	"errors"
	"sync"
	"testing"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

func assertAs(t *testing.T, err error, target **apperr.Error) bool {
	t.Helper()
	if !errors.As(err, target) {
		t.Fatalf("expected a classified error, got %v", err)
		return false
	}
	return true
}

// eventLog records collaborator side effects in order, so tests can assert
// sequencing across collaborators (revoke before delete).
type eventLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *eventLog) add(e string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

func (l *eventLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

// fakeRepo is an in-memory Repository.
type fakeRepo struct {
	mu     sync.Mutex
	users  []models.User
	events *eventLog
}

func newFakeRepo(seed ...models.User) *fakeRepo {
	return &fakeRepo{users: seed, events: &eventLog{}}
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.User(nil), r.users...), nil
}

func (r *fakeRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeRepo) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = *u
			return nil
		}
	}
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events.add("delete:" + id)
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeRepo) byID(id string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

func (r *fakeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

const hashResult = "hashed-password"

// cryptoSpy hashes everything to hashResult and records the plaintexts.
type cryptoSpy struct {
	mu     sync.Mutex
	hashed []string
}

func (c *cryptoSpy) Hash(_ context.Context, plaintext string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hashed = append(c.hashed, plaintext)
	return hashResult, nil
}

func (c *cryptoSpy) Verify(_ context.Context, plaintext, hash string) (bool, error) {
	return hash == hashResult, nil
}

const (
	randomPassword = "random-password"
	randomUserID   = "random-user-id"
)

// randomStub returns fixed values for both generators.
type randomStub struct {
	mu            sync.Mutex
	passwordCalls int
	idCalls       int
}

func (r *randomStub) SecureRandomPassword(context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passwordCalls++
	return randomPassword, nil
}

func (r *randomStub) RandomID(context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idCalls++
	return randomUserID, nil
}

// authorizerStub answers every Authorize call with ok.
type authorizerStub struct {
	ok bool
}

func (a *authorizerStub) Authorize(context.Context, *models.User, string) (bool, error) {
	return a.ok, nil
}

// validatorStub answers every caller-password check with ok.
type validatorStub struct {
	ok bool
}

func (v *validatorStub) Validate(context.Context, access.Payload, string) (bool, error) {
	return v.ok, nil
}

// resolverStub resolves every payload to a copy of its user.
type resolverStub struct {
	user models.User
	err  error
}

func (r *resolverStub) Resolve(context.Context, access.Payload) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u := r.user
	return &u, nil
}

// revokerSpy records revocations in the shared event log.
type revokerSpy struct {
	events *eventLog
}

func (r *revokerSpy) RevokePayload(_ context.Context, p access.Payload) error {
	r.events.add("revoke-payload:" + p.UserID())
	return nil
}

func (r *revokerSpy) RevokeAllForUser(_ context.Context, id string) error {
	r.events.add("revoke-all:" + id)
	return nil
}

const (
	totpSecret = "totp-secret"
	totpURL    = "otpauth://totp/inkpress:test"
	validCode  = "123456"
)

// twoFactorStub issues a fixed secret and accepts only validCode.
type twoFactorStub struct{}

func (twoFactorStub) GenerateSecret(context.Context, string) (string, string, error) {
	return totpSecret, totpURL, nil
}

func (twoFactorStub) VerifyCode(code, secret string) bool {
	return code == validCode && secret == totpSecret
}
