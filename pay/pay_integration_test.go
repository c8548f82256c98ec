package pay

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set; skipping store-backed test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connecting: %v", err)
	}

	dbName := fmt.Sprintf("ticketcounter_test_%d", time.Now().UnixNano())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client.Database(dbName).Drop(ctx)
		client.Disconnect(ctx)
	})
	return client.Database(dbName)
}

// Recording any payment wipes the whole bookings collection, other
// users' bookings included. The test pins that down rather than
// assuming a per-user delete.
func TestRecordPaymentClearsAllBookings(t *testing.T) {
	d := testDatabase(t)
	payments := d.Collection("payments")
	bookings := d.Collection("bookings")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := bookings.InsertMany(ctx, []interface{}{
		bson.M{"email": "a@b.com", "eventName": "Jazz Night"},
		bson.M{"email": "someone@else.com", "eventName": "Food Carnival"},
	})
	if err != nil {
		t.Fatalf("seeding bookings: %v", err)
	}

	svc := NewPaymentService(payments, bookings, &fakeProcessor{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments",
		strings.NewReader(`{"email":"a@b.com","price":19.99,"transactionId":"pi_123"}`))
	svc.RecordPayment(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	paid, err := payments.CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("counting payments: %v", err)
	}
	if paid != 1 {
		t.Fatalf("expected 1 payment recorded, got %d", paid)
	}

	left, err := bookings.CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("counting bookings: %v", err)
	}
	if left != 0 {
		t.Fatalf("expected bookings collection emptied, got %d left", left)
	}
}
