package builtins

import (
	"math/rand/v2"
	"time"

	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/runtime"
	"github.com/cwbudde/go-wisp/pkg/token"

	"github.com/google/uuid"
)

// registerSystem wires clock, the random namespace, and the system
// namespace (currently just system.uuid()). Grounded on the teacher's
// datetime and misc builtins (internal/interp/builtins/datetime.go,
// builtins_misc.go) for the overall "thin wrapper over a stdlib
// package" shape.
func registerSystem(r *Registry) {
	clock := fn("clock", 0, func(_ runtime.Interpreter, _ []runtime.Value) (runtime.Value, error) {
		return runtime.Number(time.Now().Unix()), nil
	})
	r.Register("clock", clock, CategorySystem, "seconds elapsed since the Unix epoch")

	random := runtime.NewNamespace("random", map[string]runtime.Value{
		"float": fn("random.float", 0, func(_ runtime.Interpreter, _ []runtime.Value) (runtime.Value, error) {
			return runtime.Number(rand.Float64()), nil
		}),
		"int": fn("random.int", 2, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			lo, err := argNumber(args, 0, "random.int")
			if err != nil {
				return nil, err
			}
			hi, err := argNumber(args, 1, "random.int")
			if err != nil {
				return nil, err
			}
			if hi <= lo {
				return nil, errors.NewArgumentError(token.Position{}, "random.int: upper bound must exceed lower bound")
			}
			span := int64(hi) - int64(lo)
			return runtime.Number(int64(lo) + rand.Int64N(span)), nil
		}),
	})
	r.Register("random", random, CategorySystem, "pseudo-random number generation")

	system := runtime.NewNamespace("system", map[string]runtime.Value{
		"uuid": fn("system.uuid", 0, func(_ runtime.Interpreter, _ []runtime.Value) (runtime.Value, error) {
			return runtime.String(uuid.NewString()), nil
		}),
	})
	r.Register("system", system, CategorySystem, "miscellaneous host-system functions")
}
