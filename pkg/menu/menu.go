// Package menu holds the pizza catalog. The catalog is the single source of
// truth for both the menu listing and pricing.
package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPizza is returned when a name does not match any catalog entry.
var ErrUnknownPizza = errors.New("pizza is not on the menu")

//go:embed menu.yaml
var defaultMenu []byte

type Pizza struct {
	Name        string
	Ingredients string
	Price       decimal.Decimal
}

// menuFile mirrors the YAML menu document.
type menuFile struct {
	Pizzas []struct {
		Name        string `yaml:"name"`
		Ingredients string `yaml:"ingredients"`
		Price       string `yaml:"price"`
	} `yaml:"pizzas"`
}

// Catalog is an immutable, ordered list of pizzas indexed by folded name.
type Catalog struct {
	pizzas []Pizza
	index  map[string]int
}

// New builds a catalog from pizzas, rejecting blank or duplicate names and
// non-positive prices.
func New(pizzas []Pizza) (*Catalog, error) {
	if len(pizzas) == 0 {
		return nil, errors.New("menu has no pizzas")
	}
	c := &Catalog{
		pizzas: make([]Pizza, 0, len(pizzas)),
		index:  make(map[string]int, len(pizzas)),
	}
	for i, p := range pizzas {
		p.Name = strings.TrimSpace(p.Name)
		p.Ingredients = strings.TrimSpace(p.Ingredients)
		if p.Name == "" {
			return nil, fmt.Errorf("pizza %d: missing name", i)
		}
		if !p.Price.IsPositive() {
			return nil, fmt.Errorf("pizza %q: price must be positive", p.Name)
		}
		key := foldName(p.Name)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("pizza %q: duplicate name", p.Name)
		}
		c.index[key] = len(c.pizzas)
		c.pizzas = append(c.pizzas, p)
	}
	return c, nil
}

// Default returns the built-in four pizza menu.
func Default() *Catalog {
	c, err := Parse(defaultMenu)
	if err != nil {
		panic(fmt.Sprintf("menu: embedded menu is invalid: %v", err))
	}
	return c
}

// LoadFile reads a YAML menu from path.
func LoadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML menu document.
func Parse(content []byte) (*Catalog, error) {
	var mf menuFile
	if err := yaml.Unmarshal(content, &mf); err != nil {
		return nil, err
	}

	pizzas := make([]Pizza, 0, len(mf.Pizzas))
	for _, entry := range mf.Pizzas {
		price, err := decimal.NewFromString(strings.TrimSpace(entry.Price))
		if err != nil {
			return nil, fmt.Errorf("pizza %q: invalid price %q: %w", entry.Name, entry.Price, err)
		}
		pizzas = append(pizzas, Pizza{
			Name:        entry.Name,
			Ingredients: entry.Ingredients,
			Price:       price,
		})
	}
	return New(pizzas)
}

// Pizzas returns a copy of the catalog in menu order.
func (c *Catalog) Pizzas() []Pizza {
	out := make([]Pizza, len(c.pizzas))
	copy(out, c.pizzas)
	return out
}

// Lookup finds a pizza by name, ignoring case and surrounding spaces.
func (c *Catalog) Lookup(name string) (Pizza, bool) {
	i, ok := c.index[foldName(name)]
	if !ok {
		return Pizza{}, false
	}
	return c.pizzas[i], true
}

// Price returns the price of the named pizza.
func (c *Catalog) Price(name string) (decimal.Decimal, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownPizza, name)
	}
	return p.Price, nil
}

// Names lists the pizza names in menu order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.pizzas))
	for i, p := range c.pizzas {
		out[i] = p.Name
	}
	return out
}

// foldName normalizes a name for case-insensitive matching.
// A Caser is stateful, so each call builds its own.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
