package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryReservation marks a payment that settles reservation entries
// instead of cart entries. Any other value (including absence) means an
// order payment.
const CategoryReservation = "Reservation"

// Payment is immutable once inserted. MenuIDs is present only on order
// payments; a reservation-fee payment omits the field entirely, which is
// what the order-stats aggregation keys on.
type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email          string             `bson:"email" json:"email"`
	Amount         float64            `bson:"amount" json:"amount"`
	Category       string             `bson:"category,omitempty" json:"category,omitempty"`
	TransactionID  string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CartIDs        []string           `bson:"cartIds,omitempty" json:"cartIds,omitempty"`
	ReservationIDs []string           `bson:"reservationIds,omitempty" json:"reservationIds,omitempty"`
	MenuIDs        []string           `bson:"menuIds,omitempty" json:"menuIds,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

func (p *Payment) IsReservation() bool {
	return p.Category == CategoryReservation
}

// SourceIDs are the identifiers of the entries this payment retires.
func (p *Payment) SourceIDs() []string {
	if p.IsReservation() {
		return p.ReservationIDs
	}
	return p.CartIDs
}

// SettlementResult carries both settlement outcomes back to the caller
// uninterpreted: the recorded payment id and how many source entries the
// cleanup pass actually removed.
type SettlementResult struct {
	PaymentID    primitive.ObjectID `json:"insertedId"`
	DeletedCount int64              `json:"deletedCount"`
}

type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Payments  int64   `json:"payments"`
	Revenue   float64 `json:"revenue"`
}

type CategoryOrderStats struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

type UserStats struct {
	WastedMoney float64 `bson:"wastedMoney" json:"wastedMoney"`
	TotalOrder  int64   `bson:"totalOrder" json:"totalOrder"`
	TotalItem   int64   `bson:"totalItem" json:"totalItem"`
}
