package builtins

import (
	"os"

	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/runtime"
	"github.com/cwbudde/go-wisp/pkg/token"
)

// registerIO wires the io namespace, grounded on the teacher's
// internal/interp/builtins/io.go ReadFile/WriteFile/exists builtins,
// collapsed into a single namespace since Wisp has no unit-loader
// search-path machinery to route file access through.
func registerIO(r *Registry) {
	fields := map[string]runtime.Value{
		"readFile": fn("io.readFile", 1, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			path, err := argString(args, 0, "io.readFile")
			if err != nil {
				return nil, err
			}
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				return nil, errors.NewIOError(token.Position{}, "io.readFile: %s", readErr)
			}
			return runtime.String(data), nil
		}),
		"writeFile": fn("io.writeFile", 2, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			path, err := argString(args, 0, "io.writeFile")
			if err != nil {
				return nil, err
			}
			data, err := argString(args, 1, "io.writeFile")
			if err != nil {
				return nil, err
			}
			if writeErr := os.WriteFile(path, []byte(data), 0o644); writeErr != nil {
				return nil, errors.NewIOError(token.Position{}, "io.writeFile: %s", writeErr)
			}
			return runtime.NilValue, nil
		}),
		"exists": fn("io.exists", 1, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			path, err := argString(args, 0, "io.exists")
			if err != nil {
				return nil, err
			}
			_, statErr := os.Stat(path)
			return runtime.Bool(statErr == nil), nil
		}),
		// listDir has no array/list value to return entry names into,
		// so it reports the entry count — still enough to check a
		// directory is non-empty or to drive a counted loop.
		"listDir": fn("io.listDir", 1, func(_ runtime.Interpreter, args []runtime.Value) (runtime.Value, error) {
			path, err := argString(args, 0, "io.listDir")
			if err != nil {
				return nil, err
			}
			entries, readErr := os.ReadDir(path)
			if readErr != nil {
				return nil, errors.NewIOError(token.Position{}, "io.listDir: %s", readErr)
			}
			return runtime.Number(len(entries)), nil
		}),
	}

	r.Register("io", runtime.NewNamespace("io", fields), CategoryIO, "file-system access")
}
