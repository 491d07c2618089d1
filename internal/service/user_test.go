package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Mehedihasan1234567/SocioSphere/internal/apperror"
)

// stubHasher replaces bcrypt in service tests so they run in microseconds.
type stubHasher struct{}

func (stubHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func newTestUserService(t *testing.T) (*UserService, *mockUserRepo) {
	t.Helper()
	repo := newMockUserRepo()
	svc := NewUserService(repo, stubHasher{}, testLogger(t))
	return svc, repo
}

func TestRegister_Success(t *testing.T) {
	svc, _ := newTestUserService(t)

	user, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.ID == "" {
		t.Error("expected user to have an ID")
	}
	if user.Name != "Ann" {
		t.Errorf("Name = %q, want %q", user.Name, "Ann")
	}
	if user.PasswordHash != "hashed:s3cret" {
		t.Errorf("PasswordHash = %q, want the hash, never the plaintext", user.PasswordHash)
	}
}

func TestRegister_TrimsWhitespace(t *testing.T) {
	svc, _ := newTestUserService(t)

	user, err := svc.Register(context.Background(), "  Ann  ", "  ann@example.com  ", "s3cret")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Name != "Ann" {
		t.Errorf("Name = %q, want trimmed %q", user.Name, "Ann")
	}
	if user.Email != "ann@example.com" {
		t.Errorf("Email = %q, want trimmed %q", user.Email, "ann@example.com")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newTestUserService(t)

	cases := []struct {
		label                 string
		name, email, password string
	}{
		{"no name", "", "a@x.com", "pw"},
		{"no email", "Ann", "", "pw"},
		{"no password", "Ann", "a@x.com", ""},
		{"whitespace name", "   ", "a@x.com", "pw"},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.name, tc.email, tc.password)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(t)

	if _, err := svc.Register(context.Background(), "Ann", "ann@example.com", "pw"); err != nil {
		t.Fatalf("setup: Register() error = %v", err)
	}

	_, err := svc.Register(context.Background(), "Other Ann", "ann@example.com", "pw2")
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

func TestGetProfile_EmptyID(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.GetProfile(context.Background(), "  ")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.GetProfile(context.Background(), "nonexistent")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateProfile_Partial(t *testing.T) {
	svc, _ := newTestUserService(t)
	user, _ := svc.Register(context.Background(), "Ann", "ann@example.com", "pw")

	name := "Annabel"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, user.ID, &name, nil)
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Name != "Annabel" {
		t.Errorf("Name = %q, want %q", updated.Name, "Annabel")
	}
	if updated.Email != "ann@example.com" {
		t.Errorf("Email = %q, want untouched", updated.Email)
	}
}

// Updating someone else's profile is 403 whether or not the target exists.
func TestUpdateProfile_OtherUser(t *testing.T) {
	svc, _ := newTestUserService(t)
	user, _ := svc.Register(context.Background(), "Ann", "ann@example.com", "pw")

	name := "Hacked"
	_, err := svc.UpdateProfile(context.Background(), user.ID, "someone-else", &name, nil)
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}

	_, err = svc.UpdateProfile(context.Background(), "nonexistent", "someone-else", &name, nil)
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("nonexistent target: error = %v, want ErrForbidden", err)
	}
}
