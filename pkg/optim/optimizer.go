package optim

// Parameter is an opaque handle to one model parameter tensor. Opti Hub
// never inspects parameters; they are forwarded to the resolved factory
// as-is.
type Parameter any

// Params is the iterable of model parameters passed to a factory.
type Params []Parameter

// Args carries constructor keyword arguments such as lr or weight_decay.
// Keys and values are forwarded to the factory without interpretation.
type Args map[string]any

// ParamGroup groups a subset of parameters with per-group options,
// following the param-group convention of the optimizer protocol.
type ParamGroup struct {
	Params  Params
	Options Args
}

// Optimizer is the minimal capability contract an upstream optimizer
// implementation must satisfy: a step method and a parameter-group
// accessor. No further interface is checked at construction time.
type Optimizer interface {
	// Step applies one parameter update.
	Step() error

	// ZeroGrad clears accumulated gradients.
	ZeroGrad()

	// ParamGroups returns the parameter groups the optimizer manages.
	ParamGroups() []ParamGroup
}

// Factory constructs an optimizer instance from caller-supplied parameters
// and keyword arguments. Errors returned by a factory are surfaced to the
// caller unchanged.
type Factory func(params Params, args Args) (Optimizer, error)
