package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestLimitThrottlesAfterBurst(t *testing.T) {
	rl := NewRateLimiter()
	handle := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	var ok, throttled int
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jwt", nil)
		req.RemoteAddr = "198.51.100.7:4242"
		handle(rec, req, nil)
		switch rec.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			throttled++
		default:
			t.Fatalf("unexpected status %d", rec.Code)
		}
	}

	if ok == 0 {
		t.Fatal("burst requests should pass")
	}
	if throttled == 0 {
		t.Fatal("expected throttling after the burst")
	}
}

func TestLimitIsPerIP(t *testing.T) {
	rl := NewRateLimiter()
	handle := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	// exhaust one IP
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jwt", nil)
		req.RemoteAddr = "198.51.100.8:4242"
		handle(rec, req, nil)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", nil)
	req.RemoteAddr = "198.51.100.9:4242"
	handle(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("fresh IP should pass, got %d", rec.Code)
	}
}
