package users

import (
	"context"
	"errors"
	"testing"
)

type memRepo struct {
	byEmail map[string]User
}

func (m *memRepo) ByEmail(_ context.Context, email string) (User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *memRepo) ByID(_ context.Context, id string) (User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (m *memRepo) Create(_ context.Context, u *User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrEmailTaken
	}
	if m.byEmail == nil {
		m.byEmail = map[string]User{}
	}
	m.byEmail[u.Email] = *u
	return nil
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()

	u, err := svc.Register(ctx, "  Jo@Example.COM ", "hunter2-long", "Jo", "Nile")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "jo@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if string(u.PasswordHash) == "hunter2-long" {
		t.Fatal("password stored in clear")
	}
	if !u.IsActive {
		t.Error("new user not active")
	}

	got, err := svc.Authenticate(ctx, "jo@example.com", "hunter2-long")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("authenticated wrong user: %s", got.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()
	if _, err := svc.Register(ctx, "jo@example.com", "hunter2-long", "Jo", ""); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Authenticate(ctx, "jo@example.com", "wrong")
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("err = %v, want ErrBadCredentials", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := NewService(&memRepo{})
	_, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("err = %v, want ErrBadCredentials", err)
	}
}

func TestAuthenticateInactiveUser(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()
	u, err := svc.Register(ctx, "jo@example.com", "hunter2-long", "Jo", "")
	if err != nil {
		t.Fatal(err)
	}
	u.IsActive = false
	repo.byEmail[u.Email] = u

	if _, err := svc.Authenticate(ctx, "jo@example.com", "hunter2-long"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("err = %v, want ErrBadCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()
	if _, err := svc.Register(ctx, "jo@example.com", "hunter2-long", "Jo", ""); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Register(ctx, "JO@example.com", "hunter2-long", "Jo", "")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}
