package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byEmail map[string]user.User
	created []user.User
	err     error
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, u)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func newTestAuth(users *mockUserRepo) *Auth {
	return NewAuthUsecase(users, jwt.NewHMACService("test-secret", time.Hour))
}

func TestAuth_Register(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]user.User{}}
	u := newTestAuth(users)

	usr, token, err := u.Register(context.Background(), RegisterInput{
		Email:    "  New.User@Example.COM ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.Email != "new.user@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if token == "" {
		t.Fatalf("expected access token")
	}
	if len(users.created) != 1 {
		t.Fatalf("expected one stored user, got %d", len(users.created))
	}
	if users.created[0].PasswordHash == "correct horse" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	u := newTestAuth(&mockUserRepo{byEmail: map[string]user.User{}})

	cases := []RegisterInput{
		{Email: "", Password: "long enough"},
		{Email: "user@example.com", Password: "short"},
	}
	for _, in := range cases {
		if _, _, err := u.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]user.User{
		"taken@example.com": {ID: uuid.New(), Email: "taken@example.com"},
	}}
	u := newTestAuth(users)

	_, _, err := u.Register(context.Background(), RegisterInput{Email: "Taken@example.com", Password: "long enough"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	userID := uuid.New()
	users := &mockUserRepo{byEmail: map[string]user.User{
		"user@example.com": {ID: userID, Email: "user@example.com", PasswordHash: string(hash)},
	}}
	u := newTestAuth(users)

	usr, token, err := u.Login(context.Background(), LoginInput{Email: "User@Example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.ID != userID {
		t.Fatalf("wrong user returned")
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if token == "" {
		t.Fatalf("expected access token")
	}
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users := &mockUserRepo{byEmail: map[string]user.User{
		"user@example.com": {ID: uuid.New(), Email: "user@example.com", PasswordHash: string(hash)},
	}}
	u := newTestAuth(users)

	_, _, err = u.Login(context.Background(), LoginInput{Email: "user@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	u := newTestAuth(&mockUserRepo{byEmail: map[string]user.User{}})

	_, _, err := u.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
