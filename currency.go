package tiltify

import (
	"encoding/json"
	"math"
	"strconv"
)

// Currency is a dollar amount expressed in United States Dollars (USD).
// Tiltify's GraphQL API sends currency values as decimal strings (e.g.
// "333333.33") rather than JSON numbers, so Currency carries its own
// unmarshaling logic. The zero value is $0.00.
type Currency struct {
	amount float64
}

// FromUSD constructs a Currency from a dollar amount. The amount is
// stored verbatim; no rounding is applied.
func FromUSD(amount float64) Currency {
	return Currency{amount: amount}
}

// USD returns the stored dollar amount for arithmetic.
func (c Currency) USD() float64 {
	return c.amount
}

// Less reports whether c is a smaller amount than other.
func (c Currency) Less(other Currency) bool {
	return c.amount < other.amount
}

// UnmarshalJSON decodes the wire form {"currency": "USD", "value": "<decimal>"}.
// Only the value field matters; siblings such as the currency tag are
// ignored (USD is the only supported currency). A value that fails to
// parse as a finite number yields a MalformedAmountError.
func (c *Currency) UnmarshalJSON(data []byte) error {
	var wire struct {
		Value string `json:"value"`
	}

	if err := json.Unmarshal(data, &wire); err != nil {
		return &MalformedAmountError{Value: string(data), Err: err}
	}

	amount, err := strconv.ParseFloat(wire.Value, 64)
	if err != nil {
		return &MalformedAmountError{Value: wire.Value, Err: err}
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return &MalformedAmountError{Value: wire.Value}
	}

	c.amount = amount
	return nil
}
