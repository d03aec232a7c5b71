package builtins

import (
	"strings"

	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/runtime"
	"github.com/cwbudde/go-wisp/pkg/token"
)

// registerStrings wires the strings namespace, grounded on the
// teacher's internal/interp/builtins/strings.go and
// strings_advanced.go — thin wrappers over Go's strings package, the
// way the teacher's own string builtins are.
func registerStrings(r *Registry) {
	fields := map[string]runtime.Value{
		"upper": fn("strings.upper", 1, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			s, err := argString(args, 0, "strings.upper")
			if err != nil {
				return nil, err
			}
			return runtime.String(strings.ToUpper(s)), nil
		}),
		"lower": fn("strings.lower", 1, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			s, err := argString(args, 0, "strings.lower")
			if err != nil {
				return nil, err
			}
			return runtime.String(strings.ToLower(s)), nil
		}),
		"trim": fn("strings.trim", 1, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			s, err := argString(args, 0, "strings.trim")
			if err != nil {
				return nil, err
			}
			return runtime.String(strings.TrimSpace(s)), nil
		}),
		"repeat": fn("strings.repeat", 2, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			s, err := argString(args, 0, "strings.repeat")
			if err != nil {
				return nil, err
			}
			n, err := argNumber(args, 1, "strings.repeat")
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, errors.NewArgumentError(token.Position{}, "strings.repeat: count must not be negative")
			}
			return runtime.String(strings.Repeat(s, int(n))), nil
		}),
		"contains": fn("strings.contains", 2, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			s, err := argString(args, 0, "strings.contains")
			if err != nil {
				return nil, err
			}
			sub, err := argString(args, 1, "strings.contains")
			if err != nil {
				return nil, err
			}
			return runtime.Bool(strings.Contains(s, sub)), nil
		}),
		"replace": fn("strings.replace", 3, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			s, err := argString(args, 0, "strings.replace")
			if err != nil {
				return nil, err
			}
			old, err := argString(args, 1, "strings.replace")
			if err != nil {
				return nil, err
			}
			new, err := argString(args, 2, "strings.replace")
			if err != nil {
				return nil, err
			}
			return runtime.String(strings.ReplaceAll(s, old, new)), nil
		}),
		"indexOf": fn("strings.indexOf", 2, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			s, err := argString(args, 0, "strings.indexOf")
			if err != nil {
				return nil, err
			}
			sub, err := argString(args, 1, "strings.indexOf")
			if err != nil {
				return nil, err
			}
			return runtime.Number(strings.Index(s, sub)), nil
		}),
	}

	r.Register("strings", runtime.NewNamespace("strings", fields), CategoryStrings, "string manipulation functions")
}
