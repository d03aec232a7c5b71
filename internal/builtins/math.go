package builtins

import (
	"math"

	"github.com/cwbudde/go-wisp/internal/runtime"
)

// registerMath wires the math namespace, grounded on the teacher's
// internal/interp/builtins/math_basic.go, math_trig.go, and
// math_advanced.go — each a thin wrapper over Go's math package.
func registerMath(r *Registry) {
	unary := func(name string, f func(float64) float64) runtime.Value {
		return fn("math."+name, 1, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			n, err := argNumber(args, 0, "math."+name)
			if err != nil {
				return nil, err
			}
			return runtime.Number(f(float64(n))), nil
		})
	}

	fields := map[string]runtime.Value{
		"sqrt":  unary("sqrt", math.Sqrt),
		"abs":   unary("abs", math.Abs),
		"sin":   unary("sin", math.Sin),
		"cos":   unary("cos", math.Cos),
		"tan":   unary("tan", math.Tan),
		"floor": unary("floor", math.Floor),
		"ceil":  unary("ceil", math.Ceil),
		"round": unary("round", math.Round),
		"pi":    runtime.Number(math.Pi),
		"e":     runtime.Number(math.E),
		"pow": fn("math.pow", 2, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			base, err := argNumber(args, 0, "math.pow")
			if err != nil {
				return nil, err
			}
			exp, err := argNumber(args, 1, "math.pow")
			if err != nil {
				return nil, err
			}
			return runtime.Number(math.Pow(float64(base), float64(exp))), nil
		}),
	}

	r.Register("math", runtime.NewNamespace("math", fields), CategoryMath, "numeric functions over math.Float64")
}
