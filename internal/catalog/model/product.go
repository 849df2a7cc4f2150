package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Product is one persisted catalog record. The JSON keys are the on-disk
// format of padaria.json and must not change.
type Product struct {
	Name  string  `json:"Nome" validate:"required"`
	Price float64 `json:"Preco" validate:"gte=0"`
	Stock int     `json:"Estoque" validate:"gte=0"`
}

// UnmarshalJSON accepts an integral stock written as a decimal, such as
// 3.0 or 3e0, since other tools writing padaria.json may emit floats.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	aux := struct {
		*plain
		Stock json.Number `json:"Estoque"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	stock, err := parseStock(aux.Stock)
	if err != nil {
		return err
	}
	p.Stock = stock
	return nil
}

func parseStock(n json.Number) (int, error) {
	if n == "" {
		return 0, nil
	}
	if i, err := strconv.Atoi(n.String()); err == nil {
		return i, nil
	}
	d, err := ParseAmount(n.String())
	if err != nil {
		return 0, fmt.Errorf("Estoque %s: %w", n, err)
	}
	i := d.IntPart()
	if !d.IsInteger() || !decimal.NewFromInt(i).Equal(d) || int64(int(i)) != i {
		return 0, fmt.Errorf("Estoque %s: not an integer", n)
	}
	return int(i), nil
}

// Catalog is the whole document, in insertion order.
type Catalog []Product

// InStock returns the products with stock > 0, keeping their relative order.
func (c Catalog) InStock() Catalog {
	out := make(Catalog, 0, len(c))
	for _, p := range c {
		if p.Stock > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Below returns the products whose stock is strictly less than threshold.
func (c Catalog) Below(threshold int) Catalog {
	out := make(Catalog, 0, len(c))
	for _, p := range c {
		if p.Stock < threshold {
			out = append(out, p)
		}
	}
	return out
}
