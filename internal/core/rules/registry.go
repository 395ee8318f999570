package rules

import "fmt"

// SingleRule inspects one command.
type SingleRule func(ctx *Context, cmd string) bool

// WindowRule inspects a window of N consecutive commands. The window length
// always equals the size the rule was registered under.
type WindowRule func(ctx *Context, window []string) bool

// FavoriteRule inspects one of the most frequent commands together with its
// occurrence count and the corpus size.
type FavoriteRule func(ctx *Context, cmd string, count, total int) bool

// VariableRule inspects an environment variable, reading it live through
// the Context. It runs when that variable is displayed in the report.
type VariableRule func(ctx *Context) bool

// Frequency-gate constants: a favorite rule only runs for commands that
// occur at least twice and make up at least 1/25th of the corpus.
const (
	favoriteMinCount  = 2
	favoriteThreshold = 25
)

// gatePasses reports whether a command is frequent enough, relative to the
// corpus size, for favorite rules to consider it.
func gatePasses(count, total int) bool {
	return count >= favoriteMinCount && total <= favoriteThreshold*count
}

/*
Registry holds the registered rules per category. It is append-only:
populated once at startup, frozen, and read-only during evaluation.
Registration order is preserved and duplicate registrations are kept, so a
rule registered twice fires twice.
*/
type Registry struct {
	singles     []SingleRule
	favorites   []FavoriteRule
	windows     map[int][]WindowRule
	windowSizes []int
	variables   map[string][]VariableRule
	frozen      bool
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		windows:   make(map[int][]WindowRule),
		variables: make(map[string][]VariableRule),
	}
}

func (r *Registry) checkMutable() {
	if r.frozen {
		panic("rules: registry is frozen")
	}
}

// AddSingle registers a rule applied to every distinct command.
func (r *Registry) AddSingle(rule SingleRule) {
	r.checkMutable()
	r.singles = append(r.singles, rule)
}

/*
AddFavorite registers a frequency-gated rule. The rule is wrapped by the
frequency gate at registration time; the gate is evaluated on every
invocation, so a rule carrying its own threshold would still compose.
*/
func (r *Registry) AddFavorite(rule FavoriteRule) {
	r.checkMutable()
	gated := func(ctx *Context, cmd string, count, total int) bool {
		if !gatePasses(count, total) {
			return false
		}
		return rule(ctx, cmd, count, total)
	}
	r.favorites = append(r.favorites, gated)
}

// AddWindow registers a rule over windows of size consecutive commands.
func (r *Registry) AddWindow(size int, rule WindowRule) {
	r.checkMutable()
	if size < 2 {
		panic(fmt.Sprintf("rules: window size must be >= 2, got %d", size))
	}
	if _, ok := r.windows[size]; !ok {
		r.windowSizes = append(r.windowSizes, size)
	}
	r.windows[size] = append(r.windows[size], rule)
}

// AddVariable registers a rule for the named environment variable.
func (r *Registry) AddVariable(name string, rule VariableRule) {
	r.checkMutable()
	r.variables[name] = append(r.variables[name], rule)
}

// Freeze makes the registry immutable; further Adds panic.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Singles returns the single-command rules in registration order.
func (r *Registry) Singles() []SingleRule {
	return r.singles
}

// Favorites returns the gated favorite rules in registration order.
func (r *Registry) Favorites() []FavoriteRule {
	return r.favorites
}

// WindowSizes returns the registered window sizes in first-registration
// order.
func (r *Registry) WindowSizes() []int {
	return r.windowSizes
}

// Windows returns the rules registered for the given window size.
func (r *Registry) Windows(size int) []WindowRule {
	return r.windows[size]
}

// Variables returns the rules registered for the named variable.
func (r *Registry) Variables(name string) []VariableRule {
	return r.variables[name]
}
