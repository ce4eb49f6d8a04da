package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts possibles d'une commande
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type OrderItem struct {
	ProductID   string `json:"product_id"`
	VariantID   string `json:"variant_id,omitempty"`
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name,omitempty"`
	SKU         string `json:"sku,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	TotalPrice  int64  `json:"total_price"`
}

type Order struct {
	ID             gocql.UUID  `json:"id"`
	OrderNumber    string      `json:"order_number"`
	UserID         string      `json:"user_id,omitempty"`
	GuestEmail     string      `json:"guest_email,omitempty"`
	GuestPhone     string      `json:"guest_phone,omitempty"`
	GuestFirstName string      `json:"guest_first_name,omitempty"`
	GuestLastName  string      `json:"guest_last_name,omitempty"`
	Subtotal       int64       `json:"subtotal"`
	ShippingCost   int64       `json:"shipping_cost"`
	Total          int64       `json:"total"`
	ShippingMethod string      `json:"shipping_method"`
	PaymentMethod  string      `json:"payment_method"`
	ShippingAddr   Address     `json:"shipping_address"`
	BillingAddr    Address     `json:"billing_address"`
	Items          []OrderItem `json:"items"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}
