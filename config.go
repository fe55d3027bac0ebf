package restcore

// ExtraHeader is one named header entry that the dispatcher injects
// into every response produced at an endpoint, unless the handler
// already set that header name itself. A name may carry more than one
// raw value (mirroring repeated headers like Set-Cookie); insertion
// order of names is preserved so diagnostics and response emission
// stay deterministic.
type ExtraHeader struct {
	Name   string
	Values [][]byte
}

// Config is a sparse option record: every option is either unset or
// carries a value. It is a draft that only takes effect once a Router
// is bound or composed into a parent (see Router.Add).
type Config struct {
	handleHead   *bool
	extraHeaders []ExtraHeader
	headersSet   bool
}

// NewConfig returns a Config with every option unset.
func NewConfig() Config {
	return Config{}
}

// BaseConfig returns a Config with every option set to its default.
// Composing this into a child prevents any parent from filling
// options in, since none are left unset.
func BaseConfig() Config {
	return MaterializedConfig{HandleHead: true}.ToConfig()
}

// HandleHead sets whether HEAD requests fall back to the GET handler.
func (c Config) HandleHead(v bool) Config {
	c.handleHead = &v
	return c
}

// ExtraHeaders sets the additional headers injected into every
// response produced at this endpoint.
func (c Config) ExtraHeaders(headers []ExtraHeader) Config {
	c.extraHeaders = headers
	c.headersSet = true
	return c
}

// IsBase reports whether every recognized option has been set,
// i.e. whether composing this config into a parent leaves nothing for
// the parent to fill in.
func (c Config) IsBase() bool {
	return c.handleHead != nil && c.headersSet
}

// Add fills any option left unset in c with other's value. Options c
// already decided are never overridden — this is what keeps
// composition lexically scoped at registration time rather than
// retroactive.
func (c Config) Add(other Config) Config {
	if c.handleHead == nil {
		c.handleHead = other.handleHead
	}
	if !c.headersSet {
		c.extraHeaders = other.extraHeaders
		c.headersSet = other.headersSet
	}
	return c
}

// Materialize resolves every unset option to its documented default.
func (c Config) Materialize() MaterializedConfig {
	m := MaterializedConfig{HandleHead: true}
	if c.handleHead != nil {
		m.HandleHead = *c.handleHead
	}
	if c.headersSet {
		m.ExtraHeaders = c.extraHeaders
	}
	return m
}

// MaterializedConfig is a Config with every option resolved to a
// concrete value.
type MaterializedConfig struct {
	HandleHead   bool
	ExtraHeaders []ExtraHeader
}

// ToConfig lifts a MaterializedConfig back into a fully-set Config.
func (m MaterializedConfig) ToConfig() Config {
	h := m.HandleHead
	return Config{handleHead: &h, extraHeaders: m.ExtraHeaders, headersSet: true}
}
