package dto

// PaymentIntentRequest asks the external provider for a payment intent.
// Price is a pointer so a missing field is distinguishable from zero.
type PaymentIntentRequest struct {
	Price *float64 `json:"price"`
}

type PaymentRequest struct {
	Email string  `json:"email"`
	Price float64 `json:"price"`
}
