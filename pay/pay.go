package pay

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"ticketcounter/stripe"
	"ticketcounter/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IntentCreator is what the service needs from the payment processor.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*stripe.PaymentIntent, error)
}

// PaymentService bridges checkout to the processor and records
// completed payments.
type PaymentService struct {
	Payments  *mongo.Collection
	Bookings  *mongo.Collection
	Processor IntentCreator
}

func NewPaymentService(payments, bookings *mongo.Collection, processor IntentCreator) *PaymentService {
	return &PaymentService{Payments: payments, Bookings: bookings, Processor: processor}
}

// minorUnits converts a price in dollars to cents. Rounding to the
// nearest cent keeps two-decimal prices exact (19.99 -> 1999); the
// price itself is not validated, a negative one is the processor's
// problem.
func minorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (p *PaymentService) CreatePaymentIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	intent, err := p.Processor.CreatePaymentIntent(r.Context(), minorUnits(body.Price), "usd")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"clientSecret": intent.ClientSecret})
}

// RecordPayment stores the payment document and then empties the whole
// bookings collection — every user's bookings, not just the payer's,
// and with no atomicity between the two writes. The frontend assumes a
// single open cart; see DESIGN.md before touching this.
func (p *PaymentService) RecordPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	paymentResult, err := p.Payments.InsertOne(ctx, doc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	deleteResult, err := p.Bookings.DeleteMany(ctx, bson.M{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"paymentResult": paymentResult,
		"deleteResult":  deleteResult,
	})
}
