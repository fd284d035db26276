package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/studyroom/internal/store"
	"github.com/dcastano/studyroom/internal/testutil"
)

func TestHashPassword(t *testing.T) {
	t.Run("unique hashes", func(t *testing.T) {
		pw := "password1234"
		hash, err := HashPassword(pw)
		if err != nil {
			t.Fatalf("password hash fail #1: %+v", err)
		}

		hash2, err := HashPassword(pw)
		if err != nil {
			t.Fatalf("password hash fail #2: %+v", err)
		}

		if hash == hash2 {
			t.Fatalf("hash and hash2 are the same hashes; should be different: %s, %s", hash, hash2)
		}
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := HashPassword("")
		if err != nil {
			t.Errorf("HashPassword() failed on empty string: %+v", err)
		}
	})
}

func TestCheckPasswordHash(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		checkPw   string
		hash      string
		wantErr   bool
		wantMatch bool
	}{
		{"correct pw", "mypassword1234", "mypassword1234", "", false, true},
		{"incorrect pw", "mypassword1234", "passwordDD1234", "", false, false},
		{"malformed hash", "mypassword1234", "passwordDD1234", "not-a-hash", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hash string
			var err error

			if tt.hash != "" {
				hash = tt.hash
			} else {
				hash, err = HashPassword(tt.password)
				if err != nil {
					t.Fatalf("%+v", err)
				}
			}

			isMatch, err := CheckPasswordHash(tt.checkPw, hash)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckPasswordHash() error = %+v", err)
			}
			if isMatch != tt.wantMatch {
				t.Errorf("match = %v, want %v", isMatch, tt.wantMatch)
			}
		})
	}
}

func TestJWT(t *testing.T) {
	t.Run("Valid_JWT", func(t *testing.T) {
		userID := uuid.New()
		tokenSecret := "validtokensecret"
		expiration := 15 * time.Second
		tokenString, err := MakeJWT(userID, tokenSecret, expiration)
		if err != nil {
			t.Fatalf("MakeJWT() error = %+v", err)
		}
		gotUserID, err := ValidateJWT(tokenString, tokenSecret)
		if err != nil {
			t.Fatalf("ValidateJWT() error = %+v", err)
		}
		if gotUserID != userID {
			t.Errorf("want = %+v, got = %+v", userID, gotUserID)
		}
	})

	t.Run("Incorrect_secret", func(t *testing.T) {
		userID := uuid.New()
		tokenString, err := MakeJWT(userID, "validtokensecret", 15*time.Second)
		if err != nil {
			t.Fatalf("MakeJWT() error = %+v", err)
		}
		if _, err := ValidateJWT(tokenString, "fakesecret"); err == nil {
			t.Fatal("ValidateJWT() accepted a token signed with another secret")
		}
	})

	t.Run("Expired_token", func(t *testing.T) {
		userID := uuid.New()
		tokenString, err := MakeJWT(userID, "validtokensecret", -1*time.Second)
		if err != nil {
			t.Fatalf("MakeJWT() error = %+v", err)
		}
		if _, err := ValidateJWT(tokenString, "validtokensecret"); err == nil {
			t.Fatal("ValidateJWT() accepted an expired token")
		}
	})

	t.Run("Corrupt_token", func(t *testing.T) {
		if _, err := ValidateJWT("corrupttoken", "validtokensecret"); err == nil {
			t.Fatal("ValidateJWT() accepted a corrupt token")
		}
	})
}

func TestGetUserFromContext(t *testing.T) {
	t.Run("is_valid_UUID", func(t *testing.T) {
		wantUserID := uuid.New()
		ctx := context.WithValue(context.Background(), UserIDKey, wantUserID)
		gotUserID, err := GetUserFromContext(ctx)
		if err != nil {
			t.Fatalf("GetUserFromContext(): expected userID but got error = %+v", err)
		}
		if gotUserID != wantUserID {
			t.Errorf("want %+v but got %+v", wantUserID, gotUserID)
		}
	})

	t.Run("wrong_type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "not-UUID")
		if _, err := GetUserFromContext(ctx); err == nil {
			t.Fatal("GetUserFromContext(): expected error but got none")
		}
	})

	t.Run("zero_UUID", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, uuid.UUID{})
		if _, err := GetUserFromContext(ctx); err == nil {
			t.Fatal("GetUserFromContext(): expected error but got none")
		}
	})

	t.Run("no_context", func(t *testing.T) {
		if _, err := GetUserFromContext(context.Background()); err == nil {
			t.Fatal("GetUserFromContext(): expected error but got none")
		}
	})
}

func TestMakeRefreshToken(t *testing.T) {
	st := store.New(testutil.DbInit(t))
	user := testutil.SeedUser(t, st, "dummy")

	t.Run("valid_refresh_token", func(t *testing.T) {
		tokenString, err := MakeRefreshToken(t.Context(), st, user.ID, 7*24*time.Hour)
		if err != nil {
			t.Fatalf("MakeRefreshToken() unexpected error = %+v", err)
		}

		tokenFromDB, err := st.GetRefreshToken(t.Context(), tokenString)
		if err != nil {
			t.Fatalf("GetRefreshToken() unexpected error = %+v", err)
		}

		if tokenFromDB.Token != tokenString {
			t.Errorf("got = %s, want = %s", tokenFromDB.Token, tokenString)
		}
		if tokenFromDB.UserID != user.ID {
			t.Errorf("got user = %s, want = %s", tokenFromDB.UserID, user.ID)
		}
	})

	t.Run("token_not_found_in_DB", func(t *testing.T) {
		if _, err := st.GetRefreshToken(t.Context(), "invalid-refresh-token"); err == nil {
			t.Fatal("GetRefreshToken() found a token that was never created")
		}
	})

	t.Run("expired_token", func(t *testing.T) {
		tokenString, err := MakeRefreshToken(t.Context(), st, user.ID, -1*time.Millisecond)
		if err != nil {
			t.Fatalf("%+v", err)
		}

		if _, err := st.GetRefreshToken(t.Context(), tokenString); err == nil {
			t.Error("GetRefreshToken() returned an expired token")
		}
	})
}
