package mongodb

import "time"

// Amounts are stored as decimal strings to avoid floating point drift in
// the document store.
type paymentDocument struct {
	ID               string         `bson:"_id"`
	AuthorizedAmount string         `bson:"authorized_amount"`
	CapturedAmount   string         `bson:"captured_amount"`
	Currency         string         `bson:"currency"`
	CardNumber       string         `bson:"card_number"`
	ExpirationMonth  int            `bson:"expiration_month"`
	ExpirationYear   int            `bson:"expiration_year"`
	CVV              int            `bson:"cvv"`
	CreatedAt        time.Time      `bson:"created_at"`
	Status           statusDocument `bson:"status"`
	Version          int64          `bson:"version"`
}

type statusDocument struct {
	Code         string    `bson:"code"`
	UpdatedAt    time.Time `bson:"updated_at"`
	ErrorMessage string    `bson:"error_message"`
}
