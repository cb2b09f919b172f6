package cycle

import (
	"fmt"

	"github.com/san-kum/thermocycle/internal/gas"
)

// Builder constructs a cycle for a working fluid and operating point.
type Builder func(g gas.Properties, p Params) Cycle

// Registry maps cycle names to builders.
type Registry struct {
	builders map[string]Builder
	order    []string
}

// NewRegistry returns a registry with the four built-in cycles. The order is
// the comparison plotting order.
func NewRegistry() *Registry {
	r := &Registry{
		builders: make(map[string]Builder),
	}

	r.register("dual", Dual)
	r.register("otto", Otto)
	r.register("diesel", Diesel)
	r.register("atkinson", Atkinson)

	return r
}

func (r *Registry) register(name string, b Builder) {
	r.builders[name] = b
	r.order = append(r.order, name)
}

// Get returns the builder for name.
func (r *Registry) Get(name string) (Builder, error) {
	b, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCycle, name)
	}
	return b, nil
}

// List returns the registered cycle names in registration order.
func (r *Registry) List() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// BuildAll constructs every registered cycle in registration order.
func (r *Registry) BuildAll(g gas.Properties, p Params) []Cycle {
	cycles := make([]Cycle, 0, len(r.order))
	for _, name := range r.order {
		cycles = append(cycles, r.builders[name](g, p))
	}
	return cycles
}
