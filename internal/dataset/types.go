package dataset

import (
	"fmt"
	"strconv"
	"time"
)

const dateFormat = "2006-01-02"

// money formats a monetary value as a fixed-point string with two decimals.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

type Customer struct {
	CustomerID  string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	City        string
	State       string
	ZipCode     string
	SignupDate  time.Time
	LoyaltyTier string
}

func (Customer) Header() []string {
	return []string{
		"customer_id", "first_name", "last_name", "email", "phone",
		"address", "city", "state", "zip_code", "signup_date", "loyalty_tier",
	}
}

func (c Customer) Record() []string {
	return []string{
		c.CustomerID, c.FirstName, c.LastName, c.Email, c.Phone,
		c.Address, c.City, c.State, c.ZipCode,
		c.SignupDate.Format(dateFormat), c.LoyaltyTier,
	}
}

type Product struct {
	ProductID string
	Name      string
	Category  string
	Price     float64
	Cost      float64
	StockQty  int
	IsActive  bool
	CreatedAt time.Time
}

func (Product) Header() []string {
	return []string{
		"product_id", "name", "category", "price", "cost",
		"stock_qty", "is_active", "created_at",
	}
}

func (p Product) Record() []string {
	active := "False"
	if p.IsActive {
		active = "True"
	}
	return []string{
		p.ProductID, p.Name, p.Category, money(p.Price), money(p.Cost),
		strconv.Itoa(p.StockQty), active, p.CreatedAt.Format(dateFormat),
	}
}

type Order struct {
	OrderID         string
	CustomerID      string
	OrderDate       time.Time
	Status          string
	Subtotal        float64
	Tax             float64
	ShippingFee     float64
	Total           float64
	PaymentMethod   string
	ShippingAddress string
}

func (Order) Header() []string {
	return []string{
		"order_id", "customer_id", "order_date", "status", "subtotal",
		"tax", "shipping_fee", "total", "payment_method", "shipping_address",
	}
}

func (o Order) Record() []string {
	return []string{
		o.OrderID, o.CustomerID, o.OrderDate.Format(dateFormat), o.Status,
		money(o.Subtotal), money(o.Tax), money(o.ShippingFee), money(o.Total),
		o.PaymentMethod, o.ShippingAddress,
	}
}

type OrderItem struct {
	OrderItemID string
	OrderID     string
	ProductID   string
	Quantity    int
	UnitPrice   float64
	Discount    float64
	LineTotal   float64
}

func (OrderItem) Header() []string {
	return []string{
		"order_item_id", "order_id", "product_id", "quantity",
		"unit_price", "discount", "line_total",
	}
}

func (i OrderItem) Record() []string {
	return []string{
		i.OrderItemID, i.OrderID, i.ProductID, strconv.Itoa(i.Quantity),
		money(i.UnitPrice), money(i.Discount), money(i.LineTotal),
	}
}

type Payment struct {
	PaymentID     string
	OrderID       string
	PaymentDate   time.Time
	PaymentMethod string
	Amount        float64
	Status        string
	TransactionID string
}

func (Payment) Header() []string {
	return []string{
		"payment_id", "order_id", "payment_date", "payment_method",
		"amount", "status", "transaction_id",
	}
}

func (p Payment) Record() []string {
	return []string{
		p.PaymentID, p.OrderID, p.PaymentDate.Format(dateFormat),
		p.PaymentMethod, money(p.Amount), p.Status, p.TransactionID,
	}
}

// Dataset holds one full generation run, in dependency order.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Payments   []Payment
}
