package sqlbuilder

const (
	OpEq        = "="
	OpNe        = "<>"
	OpGt        = ">"
	OpGe        = ">="
	OpLt        = "<"
	OpLe        = "<="
	OpLike      = "LIKE"
	OpNotLike   = "NOT LIKE"
	OpIn        = "IN"
	OpNotIn     = "NOT IN"
	OpIsNull    = "IS NULL"
	OpIsNotNull = "IS NOT NULL"
)

// Condition is a single filter applied to a column by QueryBuilder.Where.
// Unary conditions (IS NULL, IS NOT NULL) have HasValue set to false.
type Condition struct {
	Operator string
	Value    Value
	HasValue bool
}

func binary(op string, v Value) Condition {
	return Condition{Operator: op, Value: v, HasValue: true}
}

func unary(op string) Condition {
	return Condition{Operator: op}
}

type isHelpers struct {
	EqualTo            func(v Value) Condition
	NotEqualTo         func(v Value) Condition
	DifferentThan      func(v Value) Condition
	GreaterThan        func(v Value) Condition
	GreaterOrEqualThan func(v Value) Condition
	LowerThan          func(v Value) Condition
	LowerOrEqualThan   func(v Value) Condition
	Between            func(start, end Value) []Condition
	BetweenWith        func(start, end Value, inclusive bool) []Condition
	InRange            func(start, end Value) []Condition
	Like               func(value string) Condition
	LikeWith           func(value string, wildcardStart, wildcardEnd bool) Condition
	NotLike            func(value string) Condition
	Null               func() Condition
	NotNull            func() Condition
	In                 func(values ...Value) Condition
	NotIn              func(values ...Value) Condition
}

var Is = &isHelpers{
	EqualTo:            func(v Value) Condition { return binary(OpEq, v) },
	NotEqualTo:         func(v Value) Condition { return binary(OpNe, v) },
	DifferentThan:      func(v Value) Condition { return binary(OpNe, v) },
	GreaterThan:        func(v Value) Condition { return binary(OpGt, v) },
	GreaterOrEqualThan: func(v Value) Condition { return binary(OpGe, v) },
	LowerThan:          func(v Value) Condition { return binary(OpLt, v) },
	LowerOrEqualThan:   func(v Value) Condition { return binary(OpLe, v) },
	Between: func(start, end Value) []Condition {
		return between(start, end, true)
	},
	BetweenWith: between,
	InRange: func(start, end Value) []Condition {
		return between(start, end, false)
	},
	Like: func(value string) Condition {
		return like(value, true, true)
	},
	LikeWith: like,
	NotLike:  func(value string) Condition { return binary(OpNotLike, String(value)) },
	Null:     func() Condition { return unary(OpIsNull) },
	NotNull:  func() Condition { return unary(OpIsNotNull) },
	In:       func(values ...Value) Condition { return binary(OpIn, List(values...)) },
	NotIn:    func(values ...Value) Condition { return binary(OpNotIn, List(values...)) },
}

// between yields the lower bound first.
func between(start, end Value, inclusive bool) []Condition {
	upper := binary(OpLt, end)
	if inclusive {
		upper = binary(OpLe, end)
	}
	return []Condition{binary(OpGe, start), upper}
}

// like bakes the wildcards into the bound value.
func like(value string, wildcardStart, wildcardEnd bool) Condition {
	if wildcardStart {
		value = "%" + value
	}
	if wildcardEnd {
		value = value + "%"
	}
	return binary(OpLike, String(value))
}
