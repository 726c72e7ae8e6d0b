package boolnet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/hupe1980/bitarray"
)

var (
	// ErrInvalidSize is returned for a network without nodes.
	ErrInvalidSize = errors.New("boolnet: size must be positive")

	// ErrInvalidRule is returned for rules that do not match the state.
	ErrInvalidRule = errors.New("boolnet: invalid rule")
)

// Op is the operation a node applies to its neighbors.
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
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

func (op Op) apply(a, b int) int {
	switch op {
	case And:
		return a & b
	case Or:
		return a | b
	default:
		return a ^ b
	}
}

// Rule is the update rule of one node.
type Rule struct {
	Op    Op
	Left  int
	Right int
}

// Attractor describes the cycle a network settled into.
type Attractor struct {
	// Transient is the number of steps before the cycle was entered.
	Transient int
	// Period is the cycle length; 1 is a fixed point.
	Period int
	// States holds the Period states of the cycle in order.
	States []*bitarray.BitArray
}

// Network is a random Boolean network. It is not safe for concurrent use.
type Network struct {
	state *bitarray.BitArray
	rules []Rule
	steps int
	opts  options
}

// New creates a network of size nodes with a random initial state and
// random rules.
func New(size int, optFns ...Option) (*Network, error) {
	o := applyOptions(optFns)
	if size <= 0 {
		err := fmt.Errorf("%w: %d", ErrInvalidSize, size)
		o.logger.LogOperation(context.Background(), "boolnet create", size, err)
		return nil, err
	}

	rng := rand.New(rand.NewSource(o.seed)) // nolint gosec

	state, err := bitarray.New(size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		if rng.Intn(2) == 1 {
			_ = state.Set(i) // i < size
		}
	}

	rules := make([]Rule, size)
	for i := range rules {
		rules[i] = Rule{
			Op:    Op(rng.Intn(3)),
			Left:  rng.Intn(size),
			Right: rng.Intn(size),
		}
	}

	o.logger.DebugContext(context.Background(), "boolnet created", "size", size, "seed", o.seed)

	return &Network{state: state, rules: rules, opts: o}, nil
}

// NewWithRules creates a network from an explicit initial state and one
// rule per node. The state is copied.
func NewWithRules(state *bitarray.BitArray, rules []Rule, optFns ...Option) (*Network, error) {
	o := applyOptions(optFns)
	n := state.Len()

	if n == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if len(rules) != n {
		return nil, fmt.Errorf("%w: %d rules for %d nodes", ErrInvalidRule, len(rules), n)
	}
	for i, r := range rules {
		if r.Op < And || r.Op > Xor {
			return nil, fmt.Errorf("%w: node %d: unknown op %s", ErrInvalidRule, i, r.Op)
		}
		if r.Left < 0 || r.Left >= n || r.Right < 0 || r.Right >= n {
			return nil, fmt.Errorf("%w: node %d: neighbors %d, %d outside [0, %d)", ErrInvalidRule, i, r.Left, r.Right, n)
		}
	}

	return &Network{
		state: state.Clone(),
		rules: append([]Rule(nil), rules...),
		opts:  o,
	}, nil
}

// Size returns the number of nodes.
func (n *Network) Size() int {
	return n.state.Len()
}

// State returns a copy of the current state.
func (n *Network) State() *bitarray.BitArray {
	return n.state.Clone()
}

// Rules returns a copy of the update rules.
func (n *Network) Rules() []Rule {
	return append([]Rule(nil), n.rules...)
}

// Steps returns the number of steps taken so far.
func (n *Network) Steps() int {
	return n.steps
}

// Step advances every node at once and returns a copy of the new state.
// All nodes read the state from before the step.
func (n *Network) Step() *bitarray.BitArray {
	old := n.state.Clone()
	for i, r := range n.rules {
		a, _ := old.Get(r.Left) // neighbors are validated at construction
		b, _ := old.Get(r.Right)
		_ = n.state.Assign(i, r.Op.apply(a, b))
	}
	n.steps++
	return n.state.Clone()
}

// Run writes the current state and then the state after each of steps
// steps to w, one per line.
func (n *Network) Run(steps int, w io.Writer) error {
	if _, err := fmt.Fprintln(w, n.state); err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		if _, err := fmt.Fprintln(w, n.Step()); err != nil {
			return err
		}
	}
	n.opts.logger.WithStep(n.steps).DebugContext(context.Background(), "boolnet run completed", "size", n.Size())
	return nil
}

// FindAttractor steps the network until a state repeats, for at most
// maxSteps steps. Transient counts from the state at the time of the call.
// ok is false if no state repeated in time; the network has then advanced
// maxSteps steps.
func (n *Network) FindAttractor(maxSteps int) (Attractor, bool) {
	ctx := context.Background()

	history := []*bitarray.BitArray{n.State()}
	seen := map[string]int{n.state.String(): 0}

	for i := 1; i <= maxSteps; i++ {
		next := n.Step()
		key := next.String()
		if first, ok := seen[key]; ok {
			a := Attractor{
				Transient: first,
				Period:    i - first,
				States:    history[first:],
			}
			n.opts.logger.LogAttractor(ctx, i, a.Period, true)
			return a, true
		}
		seen[key] = i
		history = append(history, next)
	}

	n.opts.logger.LogAttractor(ctx, maxSteps, 0, false)
	return Attractor{}, false
}
