package request

// OrderRequest represents an order create/update request
type OrderRequest struct {
	OrderID  string `json:"orderId"`
	Customer string `json:"customer"`
	Location string `json:"location"`
	Amount   string `json:"amount"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

// CustomerRequest represents a customer create/update request
type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Orders   int    `json:"orders"`
	Status   string `json:"status"`
}
