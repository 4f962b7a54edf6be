package metrics

import (
	"errors"
	"fmt"

	"github.com/wonny/fundamentals/internal/financials"
	"github.com/wonny/fundamentals/pkg/logger"
)

var (
	ErrDependencyOrder   = errors.New("metric depends on a metric defined after it")
	ErrUnknownPrecedence = errors.New("unknown precedence")
)

// Precedence picks the winner when several candidates of one metric are satisfied
type Precedence string

const (
	// PrecedenceLast keeps the last satisfied candidate
	PrecedenceLast Precedence = "last"
	// PrecedenceFirst keeps the first satisfied candidate
	PrecedenceFirst Precedence = "first"
)

// ParsePrecedence converts a flag or config value into a Precedence
func ParsePrecedence(s string) (Precedence, error) {
	switch p := Precedence(s); p {
	case PrecedenceLast, PrecedenceFirst:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want last or first)", ErrUnknownPrecedence, s)
	}
}

// Engine derives every metric of its definition table from one Financials
type Engine struct {
	definitions []Definition
	precedence  Precedence
	logger      *logger.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithPrecedence sets the candidate precedence (default last)
func WithPrecedence(p Precedence) Option {
	return func(e *Engine) {
		e.precedence = p
	}
}

// WithDefinitions replaces the default metric table
func WithDefinitions(defs []Definition) Option {
	return func(e *Engine) {
		e.definitions = defs
	}
}

// NewEngine creates an engine. The definition table must list every metric
// after the metrics it depends on.
func NewEngine(log *logger.Logger, opts ...Option) (*Engine, error) {
	if log == nil {
		log = logger.Nop()
	}
	e := &Engine{
		definitions: Definitions(),
		precedence:  PrecedenceLast,
		logger:      log,
	}
	for _, opt := range opts {
		opt(e)
	}

	if _, err := ParsePrecedence(string(e.precedence)); err != nil {
		return nil, err
	}
	if err := checkOrder(e.definitions); err != nil {
		return nil, err
	}
	return e, nil
}

func checkOrder(defs []Definition) error {
	seen := make(map[Name]bool, len(defs))
	for _, def := range defs {
		for _, dep := range def.DependsOn {
			if !seen[dep] {
				return fmt.Errorf("%w: %s needs %s", ErrDependencyOrder, def.Name, dep)
			}
		}
		seen[def.Name] = true
	}
	return nil
}

// Compute derives all metrics. f is only read; the same input always yields
// the same Set.
func (e *Engine) Compute(f *financials.Financials) Set {
	set := make(Set, len(e.definitions))

	for i, def := range e.definitions {
		r, ok := e.evaluate(def, f, set)
		if !ok {
			e.logger.WithField("metric", string(def.Name)).Debug("Metric not computable")
			continue
		}
		r.Order = i
		set[def.Name] = r

		e.logger.WithFields(map[string]interface{}{
			"metric":   string(def.Name),
			"formula":  r.Formula,
			"value":    r.Value,
			"quarters": r.Quarters,
		}).Debug("Metric computed")
	}

	return set
}

// evaluate runs the candidates in order. Under PrecedenceLast a satisfied
// candidate overwrites earlier ones and an unsatisfied one leaves them alone.
func (e *Engine) evaluate(def Definition, f *financials.Financials, set Set) (Result, bool) {
	var (
		best  Result
		found bool
	)
	for _, c := range def.Candidates {
		v, quarters, ok := c.Formula(f, set)
		if !ok {
			continue
		}
		best = Result{
			Metric:   def.Name,
			Kind:     def.Kind,
			Value:    v,
			Computed: true,
			Quarters: quarters,
			Formula:  c.Name,
		}
		found = true
		if e.precedence == PrecedenceFirst {
			break
		}
	}
	return best, found
}

// Precedence returns the configured precedence
func (e *Engine) Precedence() Precedence {
	return e.precedence
}

// Definitions returns the engine's metric table
func (e *Engine) Definitions() []Definition {
	out := make([]Definition, len(e.definitions))
	copy(out, e.definitions)
	return out
}
