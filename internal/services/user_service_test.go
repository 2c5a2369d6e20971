package services

import (
	"testing"

	"tradefolio/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewUserService(db)

	t.Run("success", func(t *testing.T) {
		user, err := svc.CreateUser("Trader@Example.com", "secret123", "Pat", "Khan")
		testutil.AssertNoError(t, err)
		if user.Email != "trader@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Password == "secret123" {
			t.Error("password must be stored hashed")
		}
		if !svc.VerifyPassword(user, "secret123") {
			t.Error("expected password to verify")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.CreateUser("trader@example.com", "other", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.CreateUser("", "pw", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAttemptLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewUserService(db)
	_, err := svc.CreateUser("login@example.com", "secret123", "", "")
	testutil.AssertNoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.AttemptLogin("login@example.com", "secret123")
		testutil.AssertNoError(t, err)
		if user.Email != "login@example.com" {
			t.Errorf("unexpected user %s", user.Email)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.AttemptLogin("login@example.com", "nope")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.AttemptLogin("ghost@example.com", "secret123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}
