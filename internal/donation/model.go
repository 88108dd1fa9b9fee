package donation

import "time"

const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

var Methods = []string{"credit_card", "debit_card", "bank_transfer", "cash", "check", "online"}

type Donation struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       *uint      `gorm:"index" json:"user_id"`
	Amount       float64    `gorm:"not null" json:"amount"`
	Method       string     `gorm:"size:50;not null" json:"payment_method"`
	Designation  string     `gorm:"size:100" json:"designation"`
	Note         string     `gorm:"type:text" json:"note"`
	Status       string     `gorm:"size:20;default:pending" json:"status"`
	OrderID      string     `gorm:"size:100;index" json:"order_id,omitempty"`
	PaymentID    *string    `gorm:"size:100" json:"payment_id,omitempty"`
	DonatedAt    *time.Time `json:"donated_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CreateDonationRequest struct {
	UserID      *uint   `json:"user_id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"payment_method"`
	Designation string  `json:"designation"`
	Note        string  `json:"note"`
}

// StartDonationResponse carries the payment-gateway order handle the client
// needs to complete an online donation.
type StartDonationResponse struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	RazorpayKey string  `json:"razorpay_key"`
}

type VerifyPaymentRequest struct {
	OrderID     string `json:"razorpay_order_id"`
	PaymentID   string `json:"razorpay_payment_id"`
	RazorpaySig string `json:"razorpay_signature"`
}
