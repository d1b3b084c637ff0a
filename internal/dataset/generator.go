package dataset

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Identifier offsets are part of the output contract: downstream joins rely
// on C1000+i, P1000+i, O2000+i, OI3000+i and PAY4000+i resolving by
// convention as well as by stored foreign key.
const (
	customerIDBase  = 1000
	productIDBase   = 1000
	orderIDBase     = 2000
	orderItemIDBase = 3000
	paymentIDBase   = 4000
)

const taxRate = 0.07

// Generator produces the five related fixture tables. It owns its random
// source and its reference time, so a fixed seed and anchor reproduce the
// exact same dataset.
type Generator struct {
	rand *rand.Rand
	now  time.Time
}

// New returns a Generator seeded with seed and anchored at the current
// time. A zero seed falls back to the clock, so repeated unseeded runs
// produce different datasets.
func New(seed int64) *Generator {
	return NewAt(seed, time.Now())
}

// NewAt returns a Generator whose lookback windows are measured from now.
func NewAt(seed int64, now time.Time) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rand: rand.New(rand.NewSource(seed)), now: now}
}

// Generate produces rows records per table, in dependency order.
func (g *Generator) Generate(rows int) *Dataset {
	customers := g.Customers(rows)
	products := g.Products(rows)
	orders, items, payments := g.Orders(customers, products, rows)

	return &Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Payments:   payments,
	}
}

// Customers generates n customer records with geographically consistent
// city/state pairs. Emails are best-effort unique only: a two digit random
// suffix keeps collisions unlikely, not impossible.
func (g *Generator) Customers(n int) []Customer {
	customers := make([]Customer, 0, n)
	for i := 0; i < n; i++ {
		first := pick(g.rand, firstNames)
		last := pick(g.rand, lastNames)
		city := pick(g.rand, cities)

		customers = append(customers, Customer{
			CustomerID: fmt.Sprintf("C%d", customerIDBase+i),
			FirstName:  first,
			LastName:   last,
			Email: fmt.Sprintf("%s.%s%d@example.com",
				strings.ToLower(first), strings.ToLower(last), 10+g.rand.Intn(90)),
			Phone:       g.randomPhone(),
			Address:     g.randomAddress(),
			City:        city,
			State:       cityStates[city],
			ZipCode:     fmt.Sprintf("%d", 10000+g.rand.Intn(90000)),
			SignupDate:  g.randomDate(730),
			LoyaltyTier: loyaltyTiers.Pick(g.rand),
		})
	}
	return customers
}

// Products generates n product records. Cost is derived from price by a
// 40-80% factor, never sampled independently, so cost < price always holds.
func (g *Generator) Products(n int) []Product {
	products := make([]Product, 0, n)
	for i := 0; i < n; i++ {
		category := pick(g.rand, productCategories)
		price := round2(5 + g.rand.Float64()*245)
		cost := round2(price * (0.4 + g.rand.Float64()*0.4))

		products = append(products, Product{
			ProductID: fmt.Sprintf("P%d", productIDBase+i),
			Name:      fmt.Sprintf("%s Item %d", category, i+1),
			Category:  category,
			Price:     price,
			Cost:      cost,
			StockQty:  10 + g.rand.Intn(491),
			IsActive:  g.rand.Intn(2) == 1,
			CreatedAt: g.randomDate(540),
		})
	}
	return products
}

// Orders generates n orders against the already generated customer and
// product collections, plus exactly one line item and one payment per
// order. Customer and product are picked with replacement.
func (g *Generator) Orders(customers []Customer, products []Product, n int) ([]Order, []OrderItem, []Payment) {
	orders := make([]Order, 0, n)
	items := make([]OrderItem, 0, n)
	payments := make([]Payment, 0, n)

	for i := 0; i < n; i++ {
		customer := pick(g.rand, customers)
		product := pick(g.rand, products)
		quantity := 1 + g.rand.Intn(4)

		// Discount and line total are rounded independently, in this
		// order, to match the reference totals.
		discount := round2(product.Price * pick(g.rand, discountRates))
		lineTotal := round2((product.Price - discount) * float64(quantity))
		tax := round2(lineTotal * taxRate)
		shippingFee := pick(g.rand, shippingFees)
		subtotal := lineTotal
		total := round2(subtotal + tax + shippingFee)

		order := Order{
			OrderID:       fmt.Sprintf("O%d", orderIDBase+i),
			CustomerID:    customer.CustomerID,
			OrderDate:     g.randomDate(365),
			Status:        orderStatuses.Pick(g.rand),
			Subtotal:      subtotal,
			Tax:           tax,
			ShippingFee:   shippingFee,
			Total:         total,
			PaymentMethod: pick(g.rand, paymentMethods),
			// Point-in-time snapshot of the customer's address.
			ShippingAddress: fmt.Sprintf("%s, %s, %s %s",
				customer.Address, customer.City, customer.State, customer.ZipCode),
		}

		orders = append(orders, order)
		items = append(items, OrderItem{
			OrderItemID: fmt.Sprintf("OI%d", orderItemIDBase+i),
			OrderID:     order.OrderID,
			ProductID:   product.ProductID,
			Quantity:    quantity,
			UnitPrice:   product.Price,
			Discount:    discount,
			LineTotal:   lineTotal,
		})
		payments = append(payments, g.paymentFor(i, order))
	}

	return orders, items, payments
}

// paymentFor derives the payment record for an order. Payment status is
// conditioned on the order status: cancelled and returned orders are always
// refunded, and the amount follows the status (refunds capture nothing,
// failed payments capture at most half the total).
func (g *Generator) paymentFor(i int, order Order) Payment {
	var status string
	if order.Status == "Cancelled" || order.Status == "Returned" {
		status = "Refunded"
	} else {
		status = paymentStatuses.Pick(g.rand)
	}

	var amount float64
	switch status {
	case "Refunded":
		amount = 0
	case "Failed":
		amount = round2(order.Total * g.rand.Float64() * 0.5)
	default:
		amount = order.Total
	}

	return Payment{
		PaymentID:     fmt.Sprintf("PAY%d", paymentIDBase+i),
		OrderID:       order.OrderID,
		PaymentDate:   order.OrderDate.AddDate(0, 0, g.rand.Intn(6)),
		PaymentMethod: order.PaymentMethod,
		Amount:        amount,
		Status:        status,
		TransactionID: g.transactionID(),
	}
}

// randomDate returns a timestamp within the past withinDays days, with
// random time-of-day jitter.
func (g *Generator) randomDate(withinDays int) time.Time {
	d := time.Duration(g.rand.Intn(withinDays+1)) * 24 * time.Hour
	d += time.Duration(g.rand.Intn(24*60*60+1)) * time.Second
	return g.now.Add(-d)
}

func (g *Generator) randomPhone() string {
	return fmt.Sprintf("+1-%d-%d-%d",
		200+g.rand.Intn(800), 200+g.rand.Intn(800), 1000+g.rand.Intn(9000))
}

func (g *Generator) randomAddress() string {
	return fmt.Sprintf("%d %s", 100+g.rand.Intn(9900), pick(g.rand, streets))
}

// transactionID returns an opaque token: TXN- followed by ten uppercase hex
// characters.
func (g *Generator) transactionID() string {
	buf := make([]byte, 5)
	g.rand.Read(buf)
	return "TXN-" + strings.ToUpper(hex.EncodeToString(buf))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
