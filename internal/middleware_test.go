package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dcastano/studyroom/internal/auth"
	"github.com/dcastano/studyroom/internal/model"
	"github.com/dcastano/studyroom/internal/store"
	"github.com/dcastano/studyroom/internal/testutil"
)

func authedRequest(t *testing.T,
	user model.User,
	st *store.Store,
	jwtExp, refreshTokenExp time.Duration,
	withCookies bool) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/room-create", nil)
	if !withCookies {
		return req
	}

	jwtStr, err := auth.MakeJWT(user.ID, "testsecret", jwtExp)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	refreshTokenStr, err := auth.MakeRefreshToken(t.Context(), st, user.ID, refreshTokenExp)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	req.AddCookie(&http.Cookie{Name: "jwt", Value: jwtStr})
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshTokenStr})

	return req
}

func TestMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	st := store.New(testutil.DbInit(t))
	user := testutil.SeedUser(t, st, "dummy")

	tests := []struct {
		name              string
		jwtExp            time.Duration
		refreshTokenExp   time.Duration
		withCookies       bool
		wantHandlerCalled bool
		wantCode          int
	}{
		{"valid_JWT", 5 * time.Minute, 7 * 24 * time.Hour, true, true, http.StatusOK},
		{"expired_JWT_live_refresh_token", -1 * time.Second, 7 * 24 * time.Hour, true, true, http.StatusOK},
		{"expired_JWT_and_refresh_token", -1 * time.Second, -1 * time.Second, true, false, http.StatusSeeOther},
		{"empty_cookies", 0, 0, false, false, http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest(t, user, st, tt.jwtExp, tt.refreshTokenExp, tt.withCookies)
			rec := httptest.NewRecorder()

			isHandlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, err := auth.GetUserFromContext(r.Context())
				if err != nil {
					t.Errorf("no user id in context: %+v", err)
				}
				if gotID != user.ID {
					t.Errorf("user id = %s, want %s", gotID, user.ID)
				}
				isHandlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := CurrentUser(st)(RequireAuth(nextHandler))
			handler.ServeHTTP(rec, req)

			if isHandlerCalled != tt.wantHandlerCalled {
				t.Errorf("handler called = %v, want %v", isHandlerCalled, tt.wantHandlerCalled)
			}

			if rec.Code != tt.wantCode {
				t.Errorf("want %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}
