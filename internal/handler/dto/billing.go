package dto

// CreateOrderRequest represents the request body for creating a payment order.
type CreateOrderRequest struct {
	Amount int64  `json:"amount"`
	Plan   string `json:"plan"`
	Email  string `json:"email,omitempty"`
}

// CreateOrderResponse carries what the checkout widget needs.
type CreateOrderResponse struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"orderId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	RazorpayKeyID string `json:"razorpayKeyId"`
}

// VerifyPaymentRequest carries the checkout callback fields. Field names
// follow the gateway's snake_case convention.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	Email             string `json:"email"`
	Plan              string `json:"plan"`
}

// VerifyPaymentResponse confirms the granted entitlement.
type VerifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Plan    string `json:"plan"`
	Credits int    `json:"credits"`
}
