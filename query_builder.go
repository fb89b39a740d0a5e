package sqlbuilder

// QueryBuilder accumulates the parts of a SELECT statement and renders them
// into a DataQuery or a PagedQuery.
//
// Mutating methods validate their arguments before touching any state. The
// first failure of a build cycle is kept, later mutations of that cycle are
// ignored and the build call returns it. Every build call resets the builder
// so one instance can be reused sequentially; it is not safe for concurrent use.
type QueryBuilder struct {
	conn   Querier
	logger Logger

	table      string
	columns    []string
	conditions []string
	orderings  []string
	groupings  []string
	sortable   map[string]struct{}
	params     Parameters
	counter    int
	err        error
}

type Option func(b *QueryBuilder)

func WithLogger(l Logger) Option {
	return func(b *QueryBuilder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a builder whose queries are bound to conn. conn may be nil when
// the queries are only rendered.
func New(conn Querier, opts ...Option) *QueryBuilder {
	b := &QueryBuilder{conn: conn, logger: nopLogger()}
	for _, opt := range opts {
		opt(b)
	}
	b.Clear()
	return b
}

// Err returns the first validation error of the current build cycle.
func (b *QueryBuilder) Err() error {
	return b.err
}

// Clear resets the builder to a fresh build cycle. Parameter numbering starts
// again at p1.
func (b *QueryBuilder) Clear() {
	b.table = ""
	b.columns = nil
	b.conditions = nil
	b.orderings = nil
	b.groupings = nil
	b.sortable = map[string]struct{}{}
	b.params = Parameters{}
	b.counter = 0
	b.err = nil
}

// Apply runs fn against the builder, nil is ignored.
func (b *QueryBuilder) Apply(fn func(b *QueryBuilder)) *QueryBuilder {
	if fn == nil || b.err != nil {
		return b
	}
	fn(b)
	return b
}

func (b *QueryBuilder) When(cond bool, fn func(b *QueryBuilder)) *QueryBuilder {
	if !cond {
		return b
	}
	return b.Apply(fn)
}

func (b *QueryBuilder) fail(err error) *QueryBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *QueryBuilder) nextParameter() string {
	b.counter++
	return parameterName(b.counter)
}

// bind registers v under a fresh name and returns its placeholder.
func (b *QueryBuilder) bind(v Value) string {
	name := b.nextParameter()
	b.params[name] = v
	return placeholder(name)
}
