package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JuanjoFeller/billwise/internal/models"
)

// memoryUserStorage is a map-backed UserStorage for tests.
type memoryUserStorage struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newMemoryUserStorage() *memoryUserStorage {
	return &memoryUserStorage{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (m *memoryUserStorage) CreateUser(_ context.Context, user *models.User) error {
	m.byEmail[user.Email] = user
	m.byID[user.ID] = user
	return nil
}

func (m *memoryUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memoryUserStorage) GetUserByID(_ context.Context, id string) (*models.User, error) {
	return m.byID[id], nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	authenticator := NewPasswordAuthenticator(newMemoryUserStorage())

	t.Run("register and authenticate", func(t *testing.T) {
		user, err := authenticator.Register(ctx, "Ana@Example.com", "Ana", "correct horse")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.Email != "ana@example.com" {
			t.Errorf("email = %q, want normalized lowercase", user.Email)
		}
		if user.PasswordHash == "correct horse" {
			t.Error("password must not be stored in plain text")
		}

		got, err := authenticator.Authenticate(ctx, "ana@example.com", "correct horse")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("authenticated wrong user: %s vs %s", got.ID, user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "ana@example.com", "wrong password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "ghost@example.com", "whatever1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "ana@example.com", "Other Ana", "long enough")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("error = %v, want ErrEmailExists", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "bruno@example.com", "Bruno", "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("error = %v, want ErrWeakPassword", err)
		}
	})
}

func TestJWTManager(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "ana@example.com"}

	t.Run("round trip", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != "user-1" || claims.Email != "ana@example.com" {
			t.Errorf("unexpected claims: %+v", claims)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		manager := NewJWTManager("test-secret", -time.Minute)
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTManager("secret-a", time.Hour).Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := NewJWTManager("secret-b", time.Hour).Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)
		if _, err := manager.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})
}
