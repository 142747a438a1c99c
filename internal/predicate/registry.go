package predicate

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// EvalFunc evaluates a predicate over its parsed operands. The context
// carries a deadline for the one blocking category (net); filesystem and
// environment evaluators ignore it.
type EvalFunc func(ctx context.Context, ops []Operand) (bool, error)

// Spec describes one predicate: its category, name, operand signature,
// and evaluation function. Specs are immutable after registration.
type Spec struct {
	// Category groups related predicates sharing an operand domain.
	Category string

	// Name is the predicate name within its category.
	Name string

	// Kinds lists the operand types in positional order.
	// Arity is len(Kinds).
	Kinds []Kind

	// Params names the operands for generated usage lines, e.g.
	// "in-range <value> <low> <high>". When empty, kind names are used.
	Params []string

	// Help is the one-line description shown in command help.
	Help string

	// Timeout bounds evaluation for blocking predicates. Zero means the
	// predicate cannot block and no deadline is applied.
	Timeout time.Duration

	// Eval is the evaluation function.
	Eval EvalFunc
}

// Arity returns the number of operands the predicate takes.
func (s *Spec) Arity() int { return len(s.Kinds) }

// Usage returns the predicate name with operand placeholders, e.g.
// "approx-eq <a> <b> <tolerance>".
func (s *Spec) Usage() string {
	var b strings.Builder
	b.WriteString(s.Name)
	for i, k := range s.Kinds {
		name := k.String()
		if i < len(s.Params) && s.Params[i] != "" {
			name = s.Params[i]
		}
		fmt.Fprintf(&b, " <%s>", name)
	}
	return b.String()
}

// Category is a named group of predicates, in registration order.
type Category struct {
	Name  string
	Help  string
	specs map[string]*Spec
	order []string
}

// Specs returns the category's predicates in registration order.
func (c *Category) Specs() []*Spec {
	out := make([]*Spec, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.specs[name])
	}
	return out
}

// Registry is the static lookup table mapping (category, name) to a Spec.
// It is populated once at process start and read-only afterward.
type Registry struct {
	cats  map[string]*Category
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cats: make(map[string]*Category)}
}

// AddCategory registers a category with its help text. Registering the
// same category twice is an error.
func (r *Registry) AddCategory(name, help string) error {
	if _, ok := r.cats[name]; ok {
		return fmt.Errorf("category %q already registered", name)
	}
	r.cats[name] = &Category{Name: name, Help: help, specs: make(map[string]*Spec)}
	r.order = append(r.order, name)
	return nil
}

// Register adds a predicate spec to its category. The category must exist
// and the (category, name) pair must be unused.
func (r *Registry) Register(spec Spec) error {
	if spec.Name == "" {
		return fmt.Errorf("spec has empty name")
	}
	if spec.Eval == nil {
		return fmt.Errorf("spec %s %s has nil Eval", spec.Category, spec.Name)
	}
	cat, ok := r.cats[spec.Category]
	if !ok {
		return fmt.Errorf("spec %s %s: category not registered", spec.Category, spec.Name)
	}
	if _, ok := cat.specs[spec.Name]; ok {
		return fmt.Errorf("predicate %s %s already registered", spec.Category, spec.Name)
	}
	s := spec
	cat.specs[spec.Name] = &s
	cat.order = append(cat.order, spec.Name)
	return nil
}

// Categories returns all categories in registration order.
func (r *Registry) Categories() []*Category {
	out := make([]*Category, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.cats[name])
	}
	return out
}

// Lookup resolves a (category, name) pair. Unknown names yield a
// UsageError listing the valid set - never a silent false.
func (r *Registry) Lookup(category, name string) (*Spec, error) {
	cat, ok := r.cats[category]
	if !ok {
		return nil, newUnknownCategory(category, r.order)
	}
	spec, ok := cat.specs[name]
	if !ok {
		return nil, newUnknownPredicate(category, name, cat.order)
	}
	return spec, nil
}

// Dispatch resolves the predicate, parses operands per its signature, and
// evaluates it. For predicates with a nonzero Timeout the context is
// bounded by that deadline; a caller-supplied deadline takes precedence.
func (r *Registry) Dispatch(ctx context.Context, category, name string, raw []string) (bool, error) {
	spec, err := r.Lookup(category, name)
	if err != nil {
		return false, err
	}

	if len(raw) != spec.Arity() {
		return false, newWrongArity(category, name, spec.Arity(), len(raw))
	}

	ops, err := ParseOperands(spec.Kinds, raw)
	if err != nil {
		return false, err
	}

	if spec.Timeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, spec.Timeout)
			defer cancel()
		}
	}

	return spec.Eval(ctx, ops)
}
