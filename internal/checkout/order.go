package checkout

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/pehchaan/marketplace-demo/internal/cart"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusSuccess    Status = "Success"
)

func (s Status) String() string {
	return string(s)
}

// ShippingAddress is the checkout shipping form, validated at the boundary.
type ShippingAddress struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Pincode  string `json:"pincode" validate:"required,len=6,numeric"`
	Phone    string `json:"phone" validate:"required"`
}

// Order is the snapshot taken at submission. Items are a copy of the cart
// lines, never a reference, so later cart mutation cannot corrupt a placed
// order. Only Status changes after creation.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	Items         []cart.Line     `json:"items"`
	Total         int             `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Shipping      ShippingAddress `json:"shipping"`
	PlacedAt      time.Time       `json:"placed_at"`
	Status        Status          `json:"status"`
}
