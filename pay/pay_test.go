package pay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ticketcounter/stripe"
)

type fakeProcessor struct {
	amount   int64
	currency string
	err      error
}

func (f *fakeProcessor) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*stripe.PaymentIntent, error) {
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret_test"}, nil
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{0.1, 10},
		{100, 10000},
		{0, 0},
		{-19.99, -1999}, // garbage in, the processor rejects it
	}
	for _, c := range cases {
		if got := minorUnits(c.price); got != c.want {
			t.Errorf("minorUnits(%v) = %d, want %d", c.price, got, c.want)
		}
	}
}

func TestCreatePaymentIntentHandler(t *testing.T) {
	fake := &fakeProcessor{}
	svc := NewPaymentService(nil, nil, fake)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":19.99}`))
	svc.CreatePaymentIntent(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if fake.amount != 1999 || fake.currency != "usd" {
		t.Fatalf("processor invoked with amount=%d currency=%q, want 1999/usd", fake.amount, fake.currency)
	}

	var resp struct {
		ClientSecret string `json:"clientSecret"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ClientSecret != "pi_123_secret_test" {
		t.Fatalf("expected clientSecret from processor, got %q", resp.ClientSecret)
	}
}

func TestCreatePaymentIntentHandlerInvalidJSON(t *testing.T) {
	svc := NewPaymentService(nil, nil, &fakeProcessor{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader("not json"))
	svc.CreatePaymentIntent(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreatePaymentIntentHandlerProcessorFailure(t *testing.T) {
	svc := NewPaymentService(nil, nil, &fakeProcessor{err: errors.New("processor down")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":19.99}`))
	svc.CreatePaymentIntent(rec, req, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
