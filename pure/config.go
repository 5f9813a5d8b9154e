package pure

const defaultName = "anonymous"

// Config holds the settings of a single memoizing wrapper.
// A fresh Config is built for every wrapper; nothing is shared between them.
type Config struct {
	Name     string   // label reported to the observer, default: "anonymous"
	Observer Observer // default: no-op
	SizeHint int      // initial table capacity, not a bound
}

// Option mutates a Config under construction.
type Option func(*Config)

// NewConfig builds a Config from defaults and the given options.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Name:     defaultName,
		Observer: NopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Name == "" {
		cfg.Name = defaultName
	}
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}
	if cfg.SizeHint < 0 {
		cfg.SizeHint = 0
	}
	return cfg
}

// WithName sets the label used in observer events.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithObserver installs a hook that is notified of hits, computations and failures.
func WithObserver(obs Observer) Option {
	return func(c *Config) {
		c.Observer = obs
	}
}

// WithSizeHint pre-sizes the table. It never limits how many entries are kept.
func WithSizeHint(n int) Option {
	return func(c *Config) {
		c.SizeHint = n
	}
}
