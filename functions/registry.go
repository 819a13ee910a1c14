package functions

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/integ/core"
)

// Sentinel errors returned by Registry.
var (
	// ErrUnknownFunction indicates an identifier with no registered factory.
	ErrUnknownFunction = errors.New("functions: unknown function id")

	// ErrDuplicateFunction indicates a second registration of the same id.
	ErrDuplicateFunction = errors.New("functions: function id already registered")

	// ErrBadArgument indicates a missing or invalid factory argument.
	ErrBadArgument = errors.New("functions: invalid function argument")
)

// Args carries the numeric parameters of a catalog entry, e.g. {"n": 10}
// for Power.
type Args map[string]float64

// Factory builds a 1D function from its arguments.
type Factory func(args Args) (core.Function, error)

// Factory2D builds a 2D function from its arguments.
type Factory2D func(args Args) (core.Function2D, error)

// Registry maps identifiers to function factories.
// Lookups and registrations are safe for concurrent use.
type Registry struct {
	mu  sync.RWMutex
	one map[string]Factory
	two map[string]Factory2D
}

// NewRegistry returns a Registry pre-loaded with the catalog:
//
//	1D: inv_sqrt, log_x, power(n), poly_x2_cos, constant(c), polynomial(c0, c1, …)
//	2D: exp_xy, product_xy, sin_xy, sum_squares_xy
func NewRegistry() *Registry {
	r := &Registry{
		one: make(map[string]Factory),
		two: make(map[string]Factory2D),
	}

	r.one["inv_sqrt"] = func(Args) (core.Function, error) { return InvSqrt{}, nil }
	r.one["log_x"] = func(Args) (core.Function, error) { return LogX{}, nil }
	r.one["poly_x2_cos"] = func(Args) (core.Function, error) { return PolyX2Cos{}, nil }
	r.one["power"] = func(a Args) (core.Function, error) {
		n, err := a.integer("n")
		if err != nil {
			return nil, err
		}
		return Power{N: n}, nil
	}
	r.one["constant"] = func(a Args) (core.Function, error) {
		c, ok := a["c"]
		if !ok {
			return nil, fmt.Errorf("constant: missing \"c\": %w", ErrBadArgument)
		}
		return Constant{C: c}, nil
	}
	r.one["polynomial"] = func(a Args) (core.Function, error) {
		coeffs, err := a.coefficients()
		if err != nil {
			return nil, err
		}
		return Polynomial{Coeffs: coeffs}, nil
	}

	r.two["exp_xy"] = func(Args) (core.Function2D, error) { return ExpXY2D{}, nil }
	r.two["product_xy"] = func(Args) (core.Function2D, error) { return ProductXY2D{}, nil }
	r.two["sin_xy"] = func(Args) (core.Function2D, error) { return SinXY2D{}, nil }
	r.two["sum_squares_xy"] = func(Args) (core.Function2D, error) { return SumSquaresXY2D{}, nil }

	return r
}

// Register adds a 1D factory under id.
func (r *Registry) Register(id string, f Factory) error {
	if id == "" || f == nil {
		return fmt.Errorf("register %q: %w", id, ErrBadArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.one[id]; ok {
		return fmt.Errorf("%q: %w", id, ErrDuplicateFunction)
	}
	r.one[id] = f

	return nil
}

// Register2D adds a 2D factory under id.
func (r *Registry) Register2D(id string, f Factory2D) error {
	if id == "" || f == nil {
		return fmt.Errorf("register %q: %w", id, ErrBadArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.two[id]; ok {
		return fmt.Errorf("%q: %w", id, ErrDuplicateFunction)
	}
	r.two[id] = f

	return nil
}

// Function builds the 1D function registered under id.
func (r *Registry) Function(id string, args Args) (core.Function, error) {
	r.mu.RLock()
	f, ok := r.one[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownFunction)
	}

	return f(args)
}

// Function2D builds the 2D function registered under id.
func (r *Registry) Function2D(id string, args Args) (core.Function2D, error) {
	r.mu.RLock()
	f, ok := r.two[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownFunction)
	}

	return f(args)
}

// IDs returns the sorted 1D identifiers.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.one)
}

// IDs2D returns the sorted 2D identifiers.
func (r *Registry) IDs2D() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.two)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// integer reads an integral argument.
func (a Args) integer(key string) (int, error) {
	v, ok := a[key]
	if !ok {
		return 0, fmt.Errorf("missing %q: %w", key, ErrBadArgument)
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q=%g is not an integer: %w", key, v, ErrBadArgument)
	}

	return int(v), nil
}

// coefficients reads c0, c1, … up to the highest index present.
func (a Args) coefficients() ([]float64, error) {
	maxIdx := -1
	for k := range a {
		if !strings.HasPrefix(k, "c") {
			return nil, fmt.Errorf("unexpected argument %q: %w", k, ErrBadArgument)
		}
		i, err := strconv.Atoi(k[1:])
		if err != nil || i < 0 {
			return nil, fmt.Errorf("unexpected argument %q: %w", k, ErrBadArgument)
		}
		maxIdx = max(maxIdx, i)
	}
	if maxIdx < 0 {
		return nil, fmt.Errorf("polynomial needs at least c0: %w", ErrBadArgument)
	}

	coeffs := make([]float64, maxIdx+1)
	for i := range coeffs {
		coeffs[i] = a["c"+strconv.Itoa(i)] // missing ⇒ 0
	}

	return coeffs, nil
}
