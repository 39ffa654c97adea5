package calc

import (
	"math"
	"sort"
)

// AngleMode selects how the trigonometric functions interpret angles:
// sin, cos, and tan read their argument in the active mode, and asin,
// acos, and atan produce their result in it. Mode changes affect every
// subsequent evaluation, never a finished one.
type AngleMode int8

const (
	Radian AngleMode = iota
	Degree
)

func (m AngleMode) String() string {
	if m == Degree {
		return "deg"
	}
	return "rad"
}

func (m AngleMode) toRadians(x float64) float64 {
	if m == Degree {
		return x * math.Pi / 180
	}
	return x
}

func (m AngleMode) fromRadians(x float64) float64 {
	if m == Degree {
		return x * 180 / math.Pi
	}
	return x
}

// DefaultCapacity is the variable store capacity when none is configured.
const DefaultCapacity = 64

// Context is the state an evaluation runs against: the variable store,
// the angle mode, and the ans register holding the last recorded result.
// The name ans is reserved; it always resolves to the register, never to
// a stored variable. A Context is not safe to use concurrently.
type Context struct {
	vars map[string]float64
	cap  int
	mode AngleMode
	ans  float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	apply(*Context)
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	capopt  int
)

func (o varopt) apply(ctx *Context) { ctx.Set(o.name, o.val) }

func (o varsopt) apply(ctx *Context) {
	for k, v := range o {
		ctx.Set(k, v)
	}
}

func (o capopt) apply(ctx *Context) {
	if o > 0 {
		ctx.cap = int(o)
	}
}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// Capacity sets the number of variables the store accepts. Values below
// one are ignored.
func Capacity(n int) ContextOption {
	return capopt(n)
}

// NewContext creates an evaluation context with pi and e predefined and
// ans set to zero. The given options are applied in order.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{vars: make(map[string]float64), cap: DefaultCapacity}
	ctx.vars["pi"] = math.Pi
	ctx.vars["e"] = math.E
	for _, opt := range opts {
		opt.apply(ctx)
	}
	return ctx
}

// Set stores a variable. Setting ans updates the register instead.
// Returns false when the name is new and the store is full.
func (ctx *Context) Set(name string, value float64) bool {
	if name == "ans" {
		ctx.ans = value
		return true
	}
	if _, ok := ctx.vars[name]; !ok && len(ctx.vars) >= ctx.cap {
		return false
	}
	ctx.vars[name] = value
	return true
}

// Lookup returns the value of a variable. ans is always resolvable.
func (ctx *Context) Lookup(name string) (float64, bool) {
	if name == "ans" {
		return ctx.ans, true
	}
	v, ok := ctx.vars[name]
	return v, ok
}

// Delete removes a variable. ans cannot be deleted.
func (ctx *Context) Delete(name string) bool {
	if name == "ans" {
		return false
	}
	if _, ok := ctx.vars[name]; !ok {
		return false
	}
	delete(ctx.vars, name)
	return true
}

// Ans returns the last result recorded by Eval.
func (ctx *Context) Ans() float64 { return ctx.ans }

// Mode returns the active angle mode.
func (ctx *Context) Mode() AngleMode { return ctx.mode }

// SetMode switches the angle mode for subsequent evaluations.
func (ctx *Context) SetMode(m AngleMode) { ctx.mode = m }

// Names returns the stored variable names in sorted order, not including
// ans.
func (ctx *Context) Names() []string {
	names := make([]string, 0, len(ctx.vars))
	for k := range ctx.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
