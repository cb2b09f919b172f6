// Package cycle builds idealized air-standard power cycles from closed-form
// process relations.
//
// The package defines the fundamental types for cycle construction:
//
//   - [StatePoint]: a (P, V, T) vertex of a cycle
//   - [Leg]: one isentropic, isochoric or isobaric process between vertices
//   - [Cycle]: an ordered closed loop of legs
//   - [Trace]: a sampled (V, P) curve for plotting
//
// Every relation is algebraic: isentropic legs obey P·V^γ = const and
// T·V^(γ-1) = const, isochoric legs hold V with P ∝ T, isobaric legs hold P
// with V ∝ T. Nothing is solved iteratively.
//
// # Example
//
//	g := gas.Air()
//	c := cycle.Atkinson(g, cycle.DefaultParams())
//	trace := c.Trace(100)
package cycle
