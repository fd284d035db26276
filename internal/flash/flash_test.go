package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dcastano/studyroom/internal/flash"
)

func TestSetThenPop(t *testing.T) {
	rec := httptest.NewRecorder()
	flash.Set(rec, "Message cannot be empty")

	// Carry the cookie over to the next request, the way a browser would.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	rec2 := httptest.NewRecorder()
	if got := flash.Pop(rec2, req); got != "Message cannot be empty" {
		t.Errorf("Pop() = %q, want the queued notice", got)
	}

	var cleared bool
	for _, c := range rec2.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Pop() should expire the cookie")
	}
}

func TestPopWithoutNotice(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if got := flash.Pop(rec, req); got != "" {
		t.Errorf("Pop() = %q, want empty", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("Pop() on a bare request should not touch cookies")
	}
}
