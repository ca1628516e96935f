package entity

import "time"

// Order represents a storefront order as shown in the admin panel.
// Amount is kept as the human-formatted currency string entered by staff
// (e.g. "₹ 1,200"); the dashboard service parses it at aggregation time.
type Order struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	OrderID   string    `gorm:"size:100;column:order_id" json:"orderId"`
	Customer  string    `gorm:"size:255" json:"customer"`
	Location  string    `gorm:"size:255" json:"location"`
	Amount    string    `gorm:"size:100" json:"amount"`
	Status    string    `gorm:"size:50" json:"status"`
	Date      string    `gorm:"size:50" json:"date"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "customer_orders"
}
