// Package payment settles a cart against the catalog prices.
package payment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/minhyannv/pizzeria-agent-go/pkg/cart"
	"github.com/minhyannv/pizzeria-agent-go/pkg/menu"
)

var (
	ErrUnsupportedMethod = errors.New("payment method is not supported")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrUnknownItem       = errors.New("cart contains items that are not on the menu")
)

// DefaultMethods are the accepted payment methods when none are configured.
var DefaultMethods = []string{"tarjeta", "efectivo"}

// Receipt describes a settled order.
type Receipt struct {
	OrderID string
	Method  string
	Items   []string
	Total   decimal.Decimal
	Message string
}

// Processor validates payment methods and settles carts.
type Processor struct {
	catalog *menu.Catalog
	methods map[string]string
	order   []string
	newID   func() string
}

// NewProcessor builds a processor pricing items from catalog and accepting
// methods (case-insensitively).
func NewProcessor(catalog *menu.Catalog, methods []string) (*Processor, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	p := &Processor{
		catalog: catalog,
		methods: make(map[string]string, len(methods)),
		newID:   uuid.NewString,
	}
	for _, m := range methods {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		key := fold(m)
		if _, dup := p.methods[key]; dup {
			continue
		}
		p.methods[key] = m
		p.order = append(p.order, m)
	}
	if len(p.methods) == 0 {
		return nil, errors.New("at least one payment method is required")
	}
	return p, nil
}

// Methods lists the accepted payment methods.
func (p *Processor) Methods() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Supports reports whether method is accepted.
func (p *Processor) Supports(method string) bool {
	_, ok := p.methods[fold(method)]
	return ok
}

// Total sums the catalog price of every item.
func (p *Processor) Total(items []string) (decimal.Decimal, error) {
	total := decimal.Zero
	var unknown []string
	for _, item := range items {
		price, err := p.catalog.Price(item)
		if err != nil {
			unknown = append(unknown, item)
			continue
		}
		total = total.Add(price)
	}
	if len(unknown) > 0 {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownItem, strings.Join(unknown, ", "))
	}
	return total, nil
}

// Process charges the cart using method. On success the cart is emptied; on
// any failure the cart is left untouched.
func (p *Processor) Process(c *cart.Cart, method string) (Receipt, error) {
	if c == nil {
		return Receipt{}, errors.New("cart is required")
	}
	if !p.Supports(method) {
		return Receipt{}, fmt.Errorf("%w: '%s'", ErrUnsupportedMethod, method)
	}

	var receipt Receipt
	err := c.Settle(func(items []string) error {
		total, err := p.Total(items)
		if err != nil {
			return err
		}
		if total.IsZero() {
			return ErrEmptyCart
		}
		receipt = Receipt{
			OrderID: p.newID(),
			Method:  method,
			Items:   items,
			Total:   total,
			Message: fmt.Sprintf("Payment of $%s via %s processed successfully!", total.StringFixed(2), method),
		}
		return nil
	})
	if err != nil {
		return Receipt{}, err
	}
	return receipt, nil
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
