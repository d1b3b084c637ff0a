package dataset

// Fixed value pools for the synthetic universe. Downstream consumers join on
// these exact values, so additions are safe but renames are not.

var firstNames = []string{
	"Ava", "Ethan", "Sophia", "Liam", "Isabella",
	"Noah", "Mia", "Lucas", "Charlotte", "Amelia",
}

var lastNames = []string{
	"Johnson", "Smith", "Brown", "Garcia", "Martinez",
	"Davis", "Miller", "Wilson", "Moore", "Taylor",
}

var streets = []string{
	"Oak Street", "Maple Avenue", "Cedar Lane", "Pine Drive", "Willow Way",
	"Sunset Boulevard", "Hillcrest Road", "Riverview Terrace", "Highland Court", "Birch Place",
}

var cities = []string{
	"Austin", "Seattle", "Denver", "Chicago", "San Diego",
	"Boston", "Phoenix", "Atlanta", "Portland", "Miami",
}

// cityStates maps every city in the pool to its state code. A city always
// resolves to the same state, so generated addresses stay geographically
// consistent.
var cityStates = map[string]string{
	"Austin":    "TX",
	"Seattle":   "WA",
	"Denver":    "CO",
	"Chicago":   "IL",
	"San Diego": "CA",
	"Boston":    "MA",
	"Phoenix":   "AZ",
	"Atlanta":   "GA",
	"Portland":  "OR",
	"Miami":     "FL",
}

var productCategories = []string{
	"Electronics", "Home & Kitchen", "Sports", "Beauty", "Toys",
	"Books", "Clothing", "Outdoors", "Automotive", "Pet Supplies",
}

var paymentMethods = []string{
	"Credit Card", "PayPal", "Apple Pay", "Google Pay", "Gift Card",
}

// Order statuses skew heavily toward in-flight orders. The Cancelled and
// Returned tails drive the refund branch in payment generation.
var orderStatuses = NewDistribution(
	Choice[string]{Value: "Processing", Weight: 40},
	Choice[string]{Value: "Shipped", Weight: 30},
	Choice[string]{Value: "Delivered", Weight: 20},
	Choice[string]{Value: "Cancelled", Weight: 5},
	Choice[string]{Value: "Returned", Weight: 5},
)

var loyaltyTiers = NewDistribution(
	Choice[string]{Value: "Bronze", Weight: 50},
	Choice[string]{Value: "Silver", Weight: 30},
	Choice[string]{Value: "Gold", Weight: 15},
	Choice[string]{Value: "Platinum", Weight: 5},
)

var paymentStatuses = NewDistribution(
	Choice[string]{Value: "Completed", Weight: 80},
	Choice[string]{Value: "Pending", Weight: 15},
	Choice[string]{Value: "Failed", Weight: 5},
)

var discountRates = []float64{0, 0.05, 0.10, 0.15}

var shippingFees = []float64{0, 3.99, 6.99, 9.99}
