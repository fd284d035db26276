package auth

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/studyroom/internal/store"
)

const (
	RefreshTokenTTL = 7 * 24 * time.Hour
	AccessTokenTTL  = 5 * time.Minute
)

// StartSession issues a refresh token and a short-lived JWT for a user and
// sets both cookies.
func StartSession(w http.ResponseWriter, r *http.Request, st *store.Store, userID uuid.UUID) error {
	ctx := r.Context()

	refreshToken, err := MakeRefreshToken(ctx, st, userID, RefreshTokenTTL)
	if err != nil {
		return fmt.Errorf("internal/auth: failed to make refresh token: %w", err)
	}

	jwtString, err := MakeJWT(userID, os.Getenv("JWT_SECRET"), AccessTokenTTL)
	if err != nil {
		return fmt.Errorf("internal/auth: failed to make JWT: %w", err)
	}

	SetSessionCookie(w, "refresh_token", refreshToken, int(RefreshTokenTTL.Seconds()))
	SetSessionCookie(w, "jwt", jwtString, int(AccessTokenTTL.Seconds()))

	return nil
}

// RefreshSession issues a new JWT from a live refresh token cookie and
// returns the session's user id.
func RefreshSession(w http.ResponseWriter, r *http.Request, st *store.Store) (uuid.UUID, error) {
	refreshTokCookie, err := r.Cookie("refresh_token")
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("internal/auth: no refresh token cookie: %w", err)
	}

	userID, err := st.GetUserFromRefreshToken(r.Context(), refreshTokCookie.Value)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("internal/auth: failed to retrieve user from refresh token: %w", err)
	}

	jwtString, err := MakeJWT(userID, os.Getenv("JWT_SECRET"), AccessTokenTTL)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("internal/auth: failed to make JWT: %w", err)
	}

	SetSessionCookie(w, "jwt", jwtString, int(AccessTokenTTL.Seconds()))

	return userID, nil
}

// EndSession revokes the refresh token, if any, and clears both session
// cookies.
func EndSession(w http.ResponseWriter, r *http.Request, st *store.Store) error {
	var revokeErr error
	if refreshTok, err := r.Cookie("refresh_token"); err == nil {
		revokeErr = st.RevokeRefreshToken(r.Context(), refreshTok.Value)
	}

	SetSessionCookie(w, "jwt", "", -1)
	SetSessionCookie(w, "refresh_token", "", -1)

	return revokeErr
}

// SetSessionCookie writes an HTTP-only session cookie. A negative maxAge
// clears it.
func SetSessionCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
