package domain

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderApproved   OrderStatus = "approved"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// Order is a customer order. Orders are local-only in this layer.
type Order struct {
	ID              string        `json:"id"`
	OrderNumber     string        `json:"orderNumber"`
	CustomerName    string        `json:"customerName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	Date            time.Time     `json:"date"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	Total           float64       `json:"total"`
	Items           []OrderItem   `json:"items"`
	ShippingAddress string        `json:"shippingAddress"`
	CustomerType    string        `json:"customerType"`
	CourierName     string        `json:"courierName,omitempty"`
	TrackingNumber  string        `json:"trackingNumber,omitempty"`
}

// OrderInput carries the fields submitted when recording a new order.
type OrderInput struct {
	OrderNumber     string
	CustomerName    string
	Email           string
	Phone           string
	Total           float64
	Items           []OrderItem
	ShippingAddress string
	CustomerType    string
}
