package builtins

import (
	"encoding/json"

	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/runtime"
	"github.com/cwbudde/go-wisp/pkg/token"
)

// registerJSON wires json.encode/json.decode, grounded on the
// teacher's internal/interp/builtins_json.go conversion between
// interpreter values and encoding/json. Wisp's value model has no
// array/object composite, so only the scalar tags round-trip; encode
// rejects anything else rather than silently dropping data.
func registerJSON(r *Registry) {
	fields := map[string]runtime.Value{
		"encode": fn("json.encode", 1, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			native, err := toNativeJSON(args[0])
			if err != nil {
				return nil, err
			}
			data, marshalErr := json.Marshal(native)
			if marshalErr != nil {
				return nil, errors.NewIOError(token.Position{}, "json.encode: %s", marshalErr)
			}
			return runtime.String(data), nil
		}),
		"decode": fn("json.decode", 1, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			text, err := argString(args, 0, "json.decode")
			if err != nil {
				return nil, err
			}
			var native any
			if unmarshalErr := json.Unmarshal([]byte(text), &native); unmarshalErr != nil {
				return nil, errors.NewIOError(token.Position{}, "json.decode: %s", unmarshalErr)
			}
			return fromNativeJSON(native)
		}),
	}

	r.Register("json", runtime.NewNamespace("json", fields), CategoryJSON, "JSON encode/decode for scalar values")
}

func toNativeJSON(v runtime.Value) (any, error) {
	switch x := v.(type) {
	case runtime.Nil:
		return nil, nil
	case runtime.Bool:
		return bool(x), nil
	case runtime.Number:
		return float64(x), nil
	case runtime.String:
		return string(x), nil
	default:
		return nil, errors.NewArgumentError(token.Position{}, "json.encode: cannot encode a %s", v.TypeName())
	}
}

func fromNativeJSON(v any) (runtime.Value, error) {
	switch x := v.(type) {
	case nil:
		return runtime.NilValue, nil
	case bool:
		return runtime.Bool(x), nil
	case float64:
		return runtime.Number(x), nil
	case string:
		return runtime.String(x), nil
	default:
		return nil, errors.NewArgumentError(token.Position{}, "json.decode: unsupported JSON value")
	}
}
