package function

import (
	"fmt"
	"sort"
)

// Catalog is the in-memory registry of function definitions available to
// the fitting UI. Insertion order is preserved for display; persistence is
// the caller's concern.
type Catalog struct {
	defs  map[string]Definition
	order []string
}

func NewCatalog() *Catalog {
	return &Catalog{defs: make(map[string]Definition)}
}

// Add inserts a definition, rejecting duplicate names.
func (c *Catalog) Add(def Definition) error {
	if _, exists := c.defs[def.Name]; exists {
		return fmt.Errorf("function %q already exists", def.Name)
	}
	c.defs[def.Name] = def
	c.order = append(c.order, def.Name)
	return nil
}

// Get returns the definition with the given name.
func (c *Catalog) Get(name string) (Definition, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// Names returns the catalog's function names in insertion order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// SortedNames returns the names alphabetically, for stable reporting.
func (c *Catalog) SortedNames() []string {
	names := c.Names()
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int { return len(c.order) }

// Builtins returns the stock fitting models shipped with the application.
func Builtins() []Definition {
	return []Definition{
		{
			Name:       "Linear",
			Expression: "a*x + b",
			Params:     stockParams("a", "b"),
		},
		{
			Name:       "Quadratic",
			Expression: "a*x**2 + b*x + c",
			Params:     stockParams("a", "b", "c"),
		},
		{
			Name:       "Cubic",
			Expression: "a*x**3 + b*x**2 + c*x + d",
			Params:     stockParams("a", "b", "c", "d"),
		},
		{
			Name:       "Power Law",
			Expression: "a*x**b + c",
			Params:     stockParams("a", "b", "c"),
		},
		{
			Name:       "Exponential",
			Expression: "a*exp(b*x) + c",
			Params:     stockParams("a", "b", "c"),
		},
		{
			Name:       "Double Power Law",
			Expression: "a*x**b + c*x**d",
			Params:     stockParams("a", "b", "c", "d"),
		},
		{
			Name:       "Triple Power Law",
			Expression: "a*x**b + c*x**d + e*x**f",
			Params:     stockParams("a", "b", "c", "d", "e", "f"),
		},
	}
}

func stockParams(names ...string) []ParameterSpec {
	params := make([]ParameterSpec, len(names))
	for i, name := range names {
		params[i] = ParameterSpec{
			Name:         name,
			InitialValue: 1.0,
			Description:  "Parameter " + name,
		}
	}
	return params
}
