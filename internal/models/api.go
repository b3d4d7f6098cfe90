package models

// Request types

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ParticipantInput is one raw participant row from the create form. Amount is
// only meaningful for custom splits; equal splits ignore it.
type ParticipantInput struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type CreateSplitRequest struct {
	TotalAmount   float64            `json:"totalAmount"`
	TipPercentage float64            `json:"tipPercentage"`
	SplitType     SplitType          `json:"splitType"`
	Participants  []ParticipantInput `json:"participants"`
}

// PayRequest is the public payment form: the payer self-identifies by name.
type PayRequest struct {
	Name string `json:"name"`
}

// Response types

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type CreateSplitResponse struct {
	Split      *Split `json:"split"`
	PublicPath string `json:"publicPath"`
	ShareText  string `json:"shareText"`
}

// SplitStatus is the management/tracking view of a split: the document plus
// the derived pending balance. The balance is computed on read, never stored.
type SplitStatus struct {
	Split          *Split  `json:"split"`
	PendingBalance float64 `json:"pendingBalance"`
	Complete       bool    `json:"complete"`
	PublicPath     string  `json:"publicPath"`
	ShareText      string  `json:"shareText"`
}

type SplitListResponse struct {
	Splits []*SplitStatus `json:"splits"`
}

// PublicSplitResponse is the unauthenticated payment view. It exposes only
// what a participant needs to pay; the payer id is truncated for display.
type PublicSplitResponse struct {
	ID           string        `json:"id"`
	PayerHint    string        `json:"payerHint"`
	TotalWithTip float64       `json:"totalWithTip"`
	SplitType    SplitType     `json:"splitType"`
	Participants []Participant `json:"participants"`
}

type PayResponse struct {
	Name       string  `json:"name"`
	AmountPaid float64 `json:"amountPaid"`
	PaymentID  string  `json:"paymentId"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
