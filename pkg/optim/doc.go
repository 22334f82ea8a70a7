// Package optim defines the optimizer capability contract and the factory
// registry that resolves a (module path, class name) pair to a constructor.
// Provider packages register factories at init time, mirroring how the
// Python ecosystem resolves optimizer classes by import path and symbol.
package optim
