// internal/models/order.go
package models

// Order records a purchase intent awaiting manual payment confirmation.
// ProductTitle and Price are denormalized snapshots taken at checkout, so
// the order stays meaningful after the referenced product is deleted.
type Order struct {
	BaseModel
	ProductID     int64       `json:"product_id" gorm:"index"`
	ProductTitle  string      `json:"product" gorm:"size:255;not null"`
	Price         float64     `json:"price" gorm:"type:decimal(10,2);not null"`
	BuyerName     string      `json:"buyer_name" gorm:"size:255;not null"`
	BuyerEmail    string      `json:"buyer_email" gorm:"size:255;not null"`
	PaymentMethod string      `json:"payment_method" gorm:"size:100;not null"`
	Status        OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
}

// Confirmed reports whether the order has left the pending state. The
// pending -> confirmed transition is the only one; there is no way back.
func (o *Order) Confirmed() bool {
	return o.Status == OrderStatusConfirmed
}
