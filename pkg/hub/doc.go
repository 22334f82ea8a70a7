// Package hub implements the registry client: it loads the optimizer
// manifest once at construction, installs named optimizers through the
// package manager, and instantiates named optimizers by resolving their
// module path and class name through a factory registry.
package hub
