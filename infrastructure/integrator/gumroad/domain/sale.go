package domain

// Sale é uma venda retornada pela API do Gumroad. Price vem em centavos.
type Sale struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"created_at"`
	Refunded  bool   `json:"refunded"`
	Email     string `json:"email"`
}

// SalesResponse é a resposta de /v2/sales
type SalesResponse struct {
	Success bool   `json:"success"`
	Sales   []Sale `json:"sales"`
}
