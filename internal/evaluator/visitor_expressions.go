package evaluator

import (
	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/runtime"
	"github.com/cwbudde/go-wisp/pkg/ast"
	"github.com/cwbudde/go-wisp/pkg/token"
)

// evaluate walks a single expression to its runtime value, one case
// per expression variant.
func (e *Evaluator) evaluate(expr ast.Expr) (runtime.Value, error) {
	switch x := expr.(type) {
	case *ast.Literal:
		return literalValue(x.Value), nil

	case *ast.Grouping:
		return e.evaluate(x.Expr)

	case *ast.Unary:
		return e.evalUnary(x)

	case *ast.Binary:
		return e.evalBinary(x)

	case *ast.Logical:
		return e.evalLogical(x)

	case *ast.Variable:
		return e.lookupVariable(x, x.Name)

	case *ast.Assign:
		val, err := e.evaluate(x.Value)
		if err != nil {
			return nil, err
		}
		if err := e.assignVariable(x, x.Name, val); err != nil {
			return nil, err
		}
		return val, nil

	case *ast.Call:
		return e.evalCall(x)

	case *ast.PropertyGet:
		return e.evalPropertyGet(x)

	case *ast.PropertySet:
		return e.evalPropertySet(x)

	case *ast.This:
		return e.lookupVariable(x, token.Token{Literal: "this", Pos: x.Keyword.Pos})

	case *ast.Super:
		return e.evalSuper(x)

	default:
		return nil, errors.NewInternalError(expr.Pos(), "unhandled expression type %T", expr)
	}
}

func literalValue(v any) runtime.Value {
	switch x := v.(type) {
	case nil:
		return runtime.NilValue
	case bool:
		return runtime.Bool(x)
	case float64:
		return runtime.Number(x)
	case string:
		return runtime.String(x)
	default:
		return runtime.NilValue
	}
}

// lookupVariable resolves a variable or `this`/`super` reference using
// the resolver's side table: a recorded distance means a local binding
// reachable via GetAt, its absence means a global.
func (e *Evaluator) lookupVariable(expr ast.Expr, name token.Token) (runtime.Value, error) {
	if distance, ok := e.table[expr]; ok {
		if v, ok := e.env.GetAt(distance, name.Literal); ok {
			return v, nil
		}
		return nil, errors.NewInternalError(name.Pos, "resolved local '%s' missing at distance %d", name.Literal, distance)
	}
	if v, ok := e.Globals.Get(name.Literal); ok {
		return v, nil
	}
	return nil, errors.NewUndefinedError(name.Pos, errors.ErrMsgUndefinedVariable, name.Literal)
}

func (e *Evaluator) assignVariable(expr ast.Expr, name token.Token, val runtime.Value) error {
	if distance, ok := e.table[expr]; ok {
		if e.env.AssignAt(distance, name.Literal, val) {
			return nil
		}
		return errors.NewInternalError(name.Pos, "resolved local '%s' missing at distance %d", name.Literal, distance)
	}
	if e.Globals.Assign(name.Literal, val) {
		return nil
	}
	return errors.NewUndefinedError(name.Pos, errors.ErrMsgUndefinedVariable, name.Literal)
}

func (e *Evaluator) evalUnary(x *ast.Unary) (runtime.Value, error) {
	operand, err := e.evaluate(x.Operand)
	if err != nil {
		return nil, err
	}
	switch x.Operator.Type {
	case token.MINUS:
		n, ok := operand.(runtime.Number)
		if !ok {
			return nil, errors.NewTypeError(x.Operator.Pos, errors.ErrMsgOperandMustBeNumber)
		}
		return -n, nil
	case token.BANG:
		return runtime.Bool(!runtime.Truthy(operand)), nil
	default:
		return nil, errors.NewInternalError(x.Operator.Pos, "unhandled unary operator %s", x.Operator.Type)
	}
}

func (e *Evaluator) evalLogical(x *ast.Logical) (runtime.Value, error) {
	left, err := e.evaluate(x.Left)
	if err != nil {
		return nil, err
	}
	if x.Operator.Type == token.OR {
		if runtime.Truthy(left) {
			return left, nil
		}
	} else {
		if !runtime.Truthy(left) {
			return left, nil
		}
	}
	return e.evaluate(x.Right)
}

func (e *Evaluator) evalBinary(x *ast.Binary) (runtime.Value, error) {
	left, err := e.evaluate(x.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(x.Right)
	if err != nil {
		return nil, err
	}

	switch x.Operator.Type {
	case token.EQUAL_EQUAL:
		return runtime.Bool(runtime.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return runtime.Bool(!runtime.Equal(left, right)), nil
	}

	if x.Operator.Type == token.PLUS {
		if ln, lok := left.(runtime.Number); lok {
			if rn, rok := right.(runtime.Number); rok {
				return ln + rn, nil
			}
		}
		_, lIsString := left.(runtime.String)
		_, rIsString := right.(runtime.String)
		if lIsString || rIsString {
			return runtime.String(left.Display() + right.Display()), nil
		}
		return nil, errors.NewTypeError(x.Operator.Pos, errors.ErrMsgOperandsMustBeNumbersOrStrings)
	}

	ln, lok := left.(runtime.Number)
	rn, rok := right.(runtime.Number)
	if !lok || !rok {
		return nil, errors.NewTypeError(x.Operator.Pos, errors.ErrMsgOperandsMustBeNumbers)
	}

	switch x.Operator.Type {
	case token.MINUS:
		return ln - rn, nil
	case token.STAR:
		return ln * rn, nil
	case token.SLASH:
		if rn == 0 {
			return nil, errors.NewRuntimeError(x.Operator.Pos, errors.ErrMsgDivisionByZero)
		}
		return ln / rn, nil
	case token.GREATER:
		return runtime.Bool(ln > rn), nil
	case token.GREATER_EQUAL:
		return runtime.Bool(ln >= rn), nil
	case token.LESS:
		return runtime.Bool(ln < rn), nil
	case token.LESS_EQUAL:
		return runtime.Bool(ln <= rn), nil
	default:
		return nil, errors.NewInternalError(x.Operator.Pos, "unhandled binary operator %s", x.Operator.Type)
	}
}

func (e *Evaluator) evalPropertyGet(x *ast.PropertyGet) (runtime.Value, error) {
	obj, err := e.evaluate(x.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*runtime.Instance)
	if !ok {
		if cls, ok := obj.(*runtime.Class); ok {
			if fn, ok := cls.FindStaticMethod(x.Name.Literal); ok {
				return fn, nil
			}
			return nil, errors.NewUndefinedError(x.Name.Pos, errors.ErrMsgUndefinedProperty, x.Name.Literal)
		}
		return nil, errors.NewTypeError(x.Name.Pos, errors.ErrMsgOnlyInstancesHaveFields)
	}
	if v, ok := instance.Get(x.Name.Literal); ok {
		return v, nil
	}
	return nil, errors.NewUndefinedError(x.Name.Pos, errors.ErrMsgUndefinedProperty, x.Name.Literal)
}

func (e *Evaluator) evalPropertySet(x *ast.PropertySet) (runtime.Value, error) {
	obj, err := e.evaluate(x.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*runtime.Instance)
	if !ok {
		return nil, errors.NewTypeError(x.Name.Pos, errors.ErrMsgOnlyInstancesHaveFields)
	}
	val, err := e.evaluate(x.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(x.Name.Literal, val)
	return val, nil
}

func (e *Evaluator) evalSuper(x *ast.Super) (runtime.Value, error) {
	distance, ok := e.table[x]
	if !ok {
		return nil, errors.NewInternalError(x.Keyword.Pos, "unresolved super reference")
	}
	superVal, ok := e.env.GetAt(distance, "super")
	if !ok {
		return nil, errors.NewInternalError(x.Keyword.Pos, "resolved super missing at distance %d", distance)
	}
	superclass, ok := superVal.(*runtime.Class)
	if !ok {
		return nil, errors.NewInternalError(x.Keyword.Pos, "super did not resolve to a class")
	}
	// `this` always lives exactly one environment link closer than
	// `super`: Bind for the method that opened this super scope nested
	// `this` directly inside it.
	thisVal, ok := e.env.GetAt(distance-1, "this")
	if !ok {
		return nil, errors.NewInternalError(x.Keyword.Pos, "resolved this missing relative to super")
	}
	instance, ok := thisVal.(*runtime.Instance)
	if !ok {
		return nil, errors.NewInternalError(x.Keyword.Pos, "this did not resolve to an instance")
	}
	method, ok := superclass.FindMethod(x.Method.Literal)
	if !ok {
		return nil, errors.NewUndefinedError(x.Method.Pos, errors.ErrMsgUndefinedProperty, x.Method.Literal)
	}
	return method.Bind(instance), nil
}
