// Package valve provides small boolean combinators over URI predicates,
// useful for routing-style "does this reference interest me" checks.
package valve

import (
	"log/slog"
	"strings"

	"github.com/urikit/uri"
	"github.com/urikit/uri/internal/log"
	"github.com/urikit/uri/internal/util"
)

// Op is a boolean connective between two chained matchers.
type Op int

const (
	And Op = iota
	Or
	Xor
)

func (op Op) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	default:
		return "unknown"
	}
}

// apply combines two already-evaluated operands. Every member of the Op
// enumeration has a defined result here.
func (op Op) apply(a, b bool) bool {
	switch op {
	case And:
		return a && b
	case Or:
		return a || b
	case Xor:
		return a != b
	default:
		return false
	}
}

// Matcher is a predicate over a URI reference.
type Matcher interface {
	Match(r uri.Reference) bool
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(r uri.Reference) bool

func (f MatcherFunc) Match(r uri.Reference) bool { return f(r) }

// Scheme matches references whose scheme equals s.
func Scheme(s string) Matcher {
	s = util.LCase(s)
	return named{"scheme(" + s + ")", func(r uri.Reference) bool {
		return r.Scheme() == s
	}}
}

// Host matches references whose raw host equals h, ASCII case-insensitive.
func Host(h string) Matcher {
	return named{"host(" + h + ")", func(r uri.Reference) bool {
		return util.EqFold(r.Host(), h)
	}}
}

// PathPrefix matches references whose raw path starts with prefix.
func PathPrefix(prefix string) Matcher {
	return named{"path-prefix(" + prefix + ")", func(r uri.Reference) bool {
		return strings.HasPrefix(r.Path(), prefix)
	}}
}

type named struct {
	name string
	fn   func(r uri.Reference) bool
}

func (m named) Match(r uri.Reference) bool { return m.fn(r) }
func (m named) String() string             { return m.name }

// Valve is an immutable left-to-right chain of matchers joined by boolean
// connectives. Chaining methods return a new Valve, the receiver is never
// modified.
type Valve struct {
	links  []link
	logger *slog.Logger
}

type link struct {
	op Op
	m  Matcher
}

// Option configures a Valve.
type Option func(*Valve)

// WithLogger enables per-matcher trace logging during Eval.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Valve) { v.logger = logger }
}

// New returns a Valve starting with the given matcher.
func New(m Matcher, opts ...Option) *Valve {
	v := &Valve{
		links:  []link{{op: And, m: m}},
		logger: log.Noop,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// And appends a matcher joined by conjunction.
func (v *Valve) And(m Matcher) *Valve { return v.chain(And, m) }

// Or appends a matcher joined by disjunction.
func (v *Valve) Or(m Matcher) *Valve { return v.chain(Or, m) }

// Xor appends a matcher joined by exclusive disjunction.
func (v *Valve) Xor(m Matcher) *Valve { return v.chain(Xor, m) }

func (v *Valve) chain(op Op, m Matcher) *Valve {
	links := make([]link, len(v.links), len(v.links)+1)
	copy(links, v.links)
	return &Valve{
		links:  append(links, link{op: op, m: m}),
		logger: v.logger,
	}
}

// Eval runs the chain against r. Every matcher is evaluated exactly once,
// in order, regardless of the accumulated result, so trace output is
// deterministic and no connective short-circuits past a later matcher.
func (v *Valve) Eval(r uri.Reference) bool {
	if v == nil || len(v.links) == 0 {
		return false
	}
	res := v.links[0].m.Match(r)
	v.logger.Debug("valve eval",
		slog.Any("uri", log.StringValue(r.String())),
		slog.Any("matcher", v.links[0].m),
		slog.Bool("result", res),
	)
	for _, l := range v.links[1:] {
		got := l.m.Match(r)
		res = l.op.apply(res, got)
		v.logger.Debug("valve eval",
			slog.String("op", l.op.String()),
			slog.Any("matcher", l.m),
			slog.Bool("matched", got),
			slog.Bool("result", res),
		)
	}
	return res
}
