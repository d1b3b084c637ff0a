package loader

// Column types for the five known fixture tables, keyed by table then
// column. Anything not listed loads as TEXT, which also covers tables this
// tool did not generate.
var columnTypes = map[string]map[string]string{
	"customers": {},
	"products": {
		"price":     "REAL",
		"cost":      "REAL",
		"stock_qty": "INTEGER",
	},
	"orders": {
		"subtotal":     "REAL",
		"tax":          "REAL",
		"shipping_fee": "REAL",
		"total":        "REAL",
	},
	"order_items": {
		"quantity":   "INTEGER",
		"unit_price": "REAL",
		"discount":   "REAL",
		"line_total": "REAL",
	},
	"payments": {
		"amount": "REAL",
	},
}

func columnType(table, column string) string {
	if cols, ok := columnTypes[table]; ok {
		if t, ok := cols[column]; ok {
			return t
		}
	}
	return "TEXT"
}
