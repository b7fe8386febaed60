package user

import (
	"time"

	"inkpress/internal/access"
	"inkpress/internal/models"
)

// callerID is the user id carried by the test payloads.
const callerID = "caller-id"

func callerUser() models.User {
	return models.User{
		ID:           callerID,
		Name:         "Caller",
		Email:        "caller@example.com",
		PasswordHash: hashResult,
		Role:         access.AdminRole{},
		CreatedAt:    time.Now().UTC(),
	}
}

func otherUser() models.User {
	return models.User{
		ID:           "other-id",
		Name:         "Other",
		Email:        "other@example.com",
		PasswordHash: hashResult,
		Role:         access.EditorRole{},
		CreatedAt:    time.Now().UTC(),
	}
}

// setup wires a Service against fakes with everything passing by default:
// the authorizer accepts, the password validator accepts, and the resolver
// returns the caller.
type setup struct {
	svc        *Service
	repo       *fakeRepo
	crypto     *cryptoSpy
	random     *randomStub
	authorizer *authorizerStub
	validator  *validatorStub
	resolver   *resolverStub
	events     *eventLog
}

func newSetup(seed ...models.User) *setup {
	repo := newFakeRepo(seed...)
	s := &setup{
		repo:       repo,
		crypto:     &cryptoSpy{},
		random:     &randomStub{},
		authorizer: &authorizerStub{ok: true},
		validator:  &validatorStub{ok: true},
		resolver:   &resolverStub{user: callerUser()},
		events:     repo.events,
	}
	s.svc = NewService(Deps{
		Repo:       repo,
		Crypto:     s.crypto,
		Random:     s.random,
		Authorizer: s.authorizer,
		Passwords:  s.validator,
		Resolver:   s.resolver,
		Revoker:    &revokerSpy{events: repo.events},
		Roles:      access.StaticRoles{},
		RoleNames:  access.StaticRoles{},
		TwoFactor:  twoFactorStub{},
	})
	return s
}
