package rules

import "github.com/histlint/histlint/internal/core/domain/command"

/*
Evaluator applies the registered rules to a corpus. It only drives
iteration; the firing rule itself decides what to print, which lets each
rule place caret markers with rule-specific detail.
*/
type Evaluator struct {
	registry *Registry
	ctx      *Context
}

// NewEvaluator creates an evaluator. It panics if registry or ctx is nil.
func NewEvaluator(registry *Registry, ctx *Context) *Evaluator {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if ctx == nil {
		panic("context cannot be nil")
	}
	return &Evaluator{registry: registry, ctx: ctx}
}

/*
EvaluateSingles tests every distinct command, in first-occurrence order,
against every registered single-command rule. Each command is tested against
each rule exactly once and there is no early exit. The returned aggregate
reports whether any rule fired; callers may ignore it.
*/
func (e *Evaluator) EvaluateSingles(corpus command.Corpus) bool {
	fired := false
	for _, rule := range e.registry.Singles() {
		for _, cmd := range corpus.Distinct() {
			if rule(e.ctx, cmd) {
				fired = true
			}
		}
	}
	return fired
}

/*
EvaluateWindows slides every registered window size over the corpus. For
size N, indexes 0 through len(corpus)-N inclusive are visited, and every
rule of that size sees every window; all matches are evaluated.
*/
func (e *Evaluator) EvaluateWindows(corpus command.Corpus) bool {
	fired := false
	commands := corpus.Commands()
	for _, size := range e.registry.WindowSizes() {
		for i := 0; i+size <= len(commands); i++ {
			window := commands[i : i+size]
			for _, rule := range e.registry.Windows(size) {
				if rule(e.ctx, window) {
					fired = true
				}
			}
		}
	}
	return fired
}

// EvaluateFavorite runs every favorite rule against one frequent command.
// The frequency gate wrapped around each rule is checked per invocation.
func (e *Evaluator) EvaluateFavorite(cmd string, count, total int) bool {
	fired := false
	for _, rule := range e.registry.Favorites() {
		if rule(e.ctx, cmd, count, total) {
			fired = true
		}
	}
	return fired
}

// EvaluateVariable runs the rules registered for the named environment
// variable, in registration order.
func (e *Evaluator) EvaluateVariable(name string) bool {
	fired := false
	for _, rule := range e.registry.Variables(name) {
		if rule(e.ctx) {
			fired = true
		}
	}
	return fired
}
