package entity

import "time"

// Customer represents a storefront customer record
type Customer struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Location  string    `gorm:"size:255" json:"location"`
	Orders    int       `gorm:"default:0" json:"orders"`
	Status    string    `gorm:"size:50" json:"status"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
