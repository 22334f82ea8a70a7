package hub

import (
	"io"

	"github.com/optihub-labs/optihub/pkg/manifest"
	"github.com/optihub-labs/optihub/pkg/optim"
)

// Resolver resolves a (module path, class name) pair to an optimizer
// factory. *optim.Registry is the standard implementation.
type Resolver interface {
	Resolve(module, class string) (optim.Factory, error)
}

// Client is the registry client. It holds the manifest loaded at
// construction time; the registry mapping is read-only for the lifetime
// of the client. Construct one explicitly with New and pass it by
// reference — there is no process singleton and no reinitialization.
type Client struct {
	reg      *manifest.Registry
	resolver Resolver
	runner   Runner
	out      io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithResolver sets the resolver used to map module paths and class
// names to factories. Defaults to optim.Default.
func WithResolver(r Resolver) Option {
	return func(c *Client) { c.resolver = r }
}

// WithRunner sets the package manager runner used by Install. Defaults
// to a pip runner over the discovered Python interpreter.
func WithRunner(r Runner) Option {
	return func(c *Client) { c.runner = r }
}

// WithOutput sets the writer for per-name install progress lines.
// Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(c *Client) { c.out = w }
}

// New loads the registry manifest at path and returns a client over it.
// Load failures are reported as *ManifestError.
func New(path string, opts ...Option) (*Client, error) {
	reg, err := manifest.Load(path)
	if err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}
	return NewFromRegistry(reg, opts...), nil
}

// NewFromRegistry builds a client over an already-loaded registry.
func NewFromRegistry(reg *manifest.Registry, opts ...Option) *Client {
	c := &Client{
		reg:      reg,
		resolver: optim.Default,
		out:      io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.runner == nil {
		c.runner = defaultRunner()
	}
	return c
}

// Lookup returns the registry entry for name, or *UnknownOptimizerError.
// The match is case-sensitive and exact.
func (c *Client) Lookup(name string) (*manifest.Entry, error) {
	e, ok := c.reg.Lookup(name)
	if !ok {
		return nil, &UnknownOptimizerError{Name: name, Known: c.reg.Names()}
	}
	return e, nil
}

// Names returns all declared optimizer names in sorted order.
func (c *Client) Names() []string {
	return c.reg.Names()
}

// Entries returns all registry entries in name-sorted order.
func (c *Client) Entries() []*manifest.Entry {
	return c.reg.Entries()
}

// Registry returns the underlying manifest registry.
func (c *Client) Registry() *manifest.Registry {
	return c.reg
}

// Optimizer resolves name to a registered factory and instantiates it
// with the given parameters and keyword arguments.
//
// An undeclared name fails with *UnknownOptimizerError before any
// resolution is attempted. A declared name whose module or class has no
// registered factory fails with *ImportResolutionError. Errors from the
// factory itself are returned unchanged so callers see the upstream
// diagnostics. The returned optimizer is not validated beyond the
// interface type.
func (c *Client) Optimizer(name string, params optim.Params, args optim.Args) (optim.Optimizer, error) {
	entry, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}

	factory, err := c.resolver.Resolve(entry.ModulePath, entry.ClassName)
	if err != nil {
		return nil, &ImportResolutionError{
			Name:   name,
			Module: entry.ModulePath,
			Class:  entry.ClassName,
			Err:    err,
		}
	}

	return factory(params, args)
}
