package atmosphere

// DefaultSceneSize is the radius of the sky sphere and the rain spawn bound.
const DefaultSceneSize = 100.0

// Options configures an Engine.
type Options struct {
	SceneSize    float64
	RainCapacity int
	Seed         uint64
}

// DefaultOptions returns the stock scene setup.
func DefaultOptions() Options {
	return Options{
		SceneSize:    DefaultSceneSize,
		RainCapacity: RainCapacity,
		Seed:         1,
	}
}

// Engine owns the atmosphere state and the rain buffer.
type Engine struct {
	opts  Options
	state AtmosphereState
	rain  *RainBuffer
}

// New allocates the rain buffer and returns an engine in its initial state.
func New(opts Options) *Engine {
	if opts.SceneSize <= 0 {
		opts.SceneSize = DefaultSceneSize
	}
	if opts.RainCapacity <= 0 {
		opts.RainCapacity = RainCapacity
	}
	return &Engine{
		opts:  opts,
		state: InitialState(),
		rain:  NewRainBuffer(opts.RainCapacity, opts.SceneSize, opts.Seed),
	}
}

// Advance computes one frame.
func (e *Engine) Advance(c Controls, cam Camera) RenderParameters {
	e.state = Step(e.state, c, cam, e.rain)
	return e.state.Parameters()
}

// State returns the current atmosphere state.
func (e *Engine) State() AtmosphereState {
	return e.state
}

// Rain returns the engine's rain buffer.
func (e *Engine) Rain() *RainBuffer {
	return e.rain
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}
