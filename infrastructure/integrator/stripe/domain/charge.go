package domain

// Charge é a representação de uma cobrança retornada pela API do Stripe.
// Amount vem em unidades mínimas da moeda (centavos).
type Charge struct {
	ID             string            `json:"id"`
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Paid           bool              `json:"paid"`
	Refunded       bool              `json:"refunded"`
	Created        int64             `json:"created"`
	ReceiptEmail   string            `json:"receipt_email"`
	Metadata       map[string]string `json:"metadata"`
	BillingDetails BillingDetails    `json:"billing_details"`
}

type BillingDetails struct {
	Email string `json:"email"`
}

// ChargeList é a página de cobranças retornada por /v1/charges
type ChargeList struct {
	Data    []Charge `json:"data"`
	HasMore bool     `json:"has_more"`
}
