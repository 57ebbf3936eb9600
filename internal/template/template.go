// Package template implements jason's template record and call contract.
//
// Template itself knows nothing about Context: it depends only on the Env
// interface below, so internal/evaluator can implement it without the two
// packages importing each other.
package template

import (
	"fmt"

	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/token"
	"github.com/alexandermeade/jason-rs/internal/types"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// Template is an immutable per-definition record: name, ordered parameter
// names, body entries, and an optional typing pair attached later by a
// prior or subsequent `::` signature.
type Template struct {
	Name   string
	Params []string
	Body   []*ast.Node // block entries ('key : value' nodes)

	ParamTypes []types.Type // parallel to Params; nil entry means Any
	ResultType types.Type   // nil means Any
}

// Env is the slice of evaluator behaviour a template call needs: evaluating
// nodes, evaluating a block's entries into an object, and shadowing then
// restoring variable bindings around the call. evaluator.Context implements
// this.
type Env interface {
	Eval(n *ast.Node) (*value.Value, error)
	EvalBlockEntries(entries []*ast.Node) (*value.Value, error)
	SaveBinding(name string) (savedValue *value.Value, hadValue bool, savedType types.Type, hadType bool)
	BindArg(name string, v *value.Value, t types.Type)
	RestoreBinding(name string, savedValue *value.Value, hadValue bool, savedType types.Type, hadType bool)
	NewError(kind errors.Kind, pos token.Position, msg string) *errors.Error
}

// New builds a Template, rejecting a body that calls name itself: a
// template may not recursively call itself.
func New(name string, params []string, body []*ast.Node) (*Template, error) {
	for _, entry := range body {
		if containsSelfCall(entry, name) {
			return nil, fmt.Errorf("template %s calls itself", name)
		}
	}
	return &Template{Name: name, Params: params, Body: body}, nil
}

func containsSelfCall(n *ast.Node, name string) bool {
	if n == nil {
		return false
	}
	if n.Token.Type == token.CALL && n.Token.Literal == name {
		return true
	}
	if containsSelfCall(n.Left, name) || containsSelfCall(n.Right, name) {
		return true
	}
	for _, c := range n.Children {
		if containsSelfCall(c, name) {
			return true
		}
	}
	for _, c := range n.BodyChildren {
		if containsSelfCall(c, name) {
			return true
		}
	}
	return false
}

// WithSignature attaches a declared template signature: per-parameter
// types and a result type, replacing any signature attached earlier.
func (t *Template) WithSignature(paramTypes []types.Type, result types.Type) {
	t.ParamTypes = paramTypes
	t.ResultType = result
}

// ParamType returns the declared type for parameter index i, defaulting to
// Any when untyped or out of range.
func (t *Template) ParamType(i int) types.Type {
	if i < len(t.ParamTypes) && t.ParamTypes[i] != nil {
		return t.ParamTypes[i]
	}
	return types.Primitive(types.TAny)
}

// Result returns the declared result type, defaulting to Any.
func (t *Template) Result() types.Type {
	if t.ResultType != nil {
		return t.ResultType
	}
	return types.Primitive(types.TAny)
}

// Call evaluates the arguments, checks each against its declared parameter
// type, shadows the parameter bindings, evaluates the body into an object,
// checks the result against the declared result type, then restores the
// prior bindings regardless of outcome.
func (t *Template) Call(env Env, argNodes []*ast.Node, callPos token.Position) (*value.Value, error) {
	if len(argNodes) != len(t.Params) {
		return nil, env.NewError(errors.InvalidOperation, callPos,
			fmt.Sprintf("template %s expects %d argument(s), got %d", t.Name, len(t.Params), len(argNodes))).WithName(t.Name)
	}

	args := make([]*value.Value, len(argNodes))
	for i, argNode := range argNodes {
		v, err := env.Eval(argNode)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, env.NewError(errors.MissingValue, argNode.Pos(), "argument produced no value").WithName(t.Name)
		}
		args[i] = v
	}

	for i, paramName := range t.Params {
		pt := t.ParamType(i)
		if !types.Matches(pt, args[i]) {
			msg := fmt.Sprintf("argument %q to template %s does not match declared type %s", paramName, t.Name, pt)
			if obj, ok := pt.(*types.Object); ok {
				if got, ok2 := types.Infer(args[i]).(*types.Object); ok2 {
					msg += ": " + types.Diff(obj, got)
				}
			}
			return nil, env.NewError(errors.TypeError, callPos, msg).WithName(paramName)
		}
	}

	type saved struct {
		v    *value.Value
		hadV bool
		t    types.Type
		hadT bool
	}
	restores := make([]saved, len(t.Params))
	for i, paramName := range t.Params {
		sv, hadV, st, hadT := env.SaveBinding(paramName)
		restores[i] = saved{sv, hadV, st, hadT}
		env.BindArg(paramName, args[i], t.ParamType(i))
	}
	defer func() {
		for i, paramName := range t.Params {
			r := restores[i]
			env.RestoreBinding(paramName, r.v, r.hadV, r.t, r.hadT)
		}
	}()

	result, err := env.EvalBlockEntries(t.Body)
	if err != nil {
		return nil, err
	}

	rt := t.Result()
	if !types.Matches(rt, result) {
		msg := fmt.Sprintf("template %s result does not match declared type %s", t.Name, rt)
		if obj, ok := rt.(*types.Object); ok {
			if got, ok2 := types.Infer(result).(*types.Object); ok2 {
				msg += ": " + types.Diff(obj, got)
			}
		}
		return nil, env.NewError(errors.TypeError, callPos, msg).WithName(t.Name)
	}

	return result, nil
}
