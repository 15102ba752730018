// Restricted evaluation of user-typed function expressions
package expr

import (
	"errors"
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidExpression wraps every parse and evaluation failure surfaced to
// the dialog: syntax errors, unknown names, domain errors.
var ErrInvalidExpression = errors.New("invalid expression")

// Preview sampling domain: 100 linearly spaced points over [-10, 10].
const (
	PreviewMin    = -10.0
	PreviewMax    = 10.0
	PreviewPoints = 100
)

// Evaluator holds a compiled expression over named parameters and the
// variable x. Only the fixed function set {sin, cos, exp, log} and the
// caller-supplied bindings resolve; there is no other namespace.
type Evaluator struct {
	text string
	expr *govaluate.EvaluableExpression
}

// New compiles the expression text. Syntax errors and references to
// functions outside the allow-list fail here.
func New(text string) (*Evaluator, error) {
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(text, mathFunctions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return &Evaluator{text: text, expr: parsed}, nil
}

// Text returns the source expression.
func (e *Evaluator) Text() string { return e.text }

// Eval evaluates the expression with the given parameter values and x.
// Unknown names, non-numeric results and non-finite results are errors.
func (e *Evaluator) Eval(params map[string]float64, x float64) (float64, error) {
	vars := make(map[string]interface{}, len(params)+1)
	for name, value := range params {
		vars[name] = value
	}
	vars["x"] = x

	result, err := e.expr.Evaluate(vars)
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}

	y, ok := result.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("%w: result is %T, not a number", ErrInvalidExpression, result)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return math.NaN(), fmt.Errorf("%w: result is not finite at x=%g", ErrInvalidExpression, x)
	}
	return y, nil
}

// Sample evaluates the expression at every point of xs, aborting on the
// first failure.
func (e *Evaluator) Sample(params map[string]float64, xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := e.Eval(params, x)
		if err != nil {
			return nil, err
		}
		ys[i] = y
	}
	return ys, nil
}

// Domain returns n linearly spaced points over [min, max].
func Domain(min, max float64, n int) []float64 {
	return floats.Span(make([]float64, n), min, max)
}

// PreviewDomain returns the fixed preview sampling grid.
func PreviewDomain() []float64 {
	return Domain(PreviewMin, PreviewMax, PreviewPoints)
}

// mathFunctions is the fixed allow-list bound into every expression.
func mathFunctions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"sin": unary("sin", math.Sin),
		"cos": unary("cos", math.Cos),
		"exp": unary("exp", math.Exp),
		"log": func(args ...interface{}) (interface{}, error) {
			v, err := singleArg("log", args)
			if err != nil {
				return nil, err
			}
			if v <= 0 {
				return nil, fmt.Errorf("log of non-positive value %g", v)
			}
			return math.Log(v), nil
		},
	}
}

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		v, err := singleArg(name, args)
		if err != nil {
			return nil, err
		}
		return fn(v), nil
	}
}

func singleArg(name string, args []interface{}) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
	}
	v, ok := args[0].(float64)
	if !ok {
		return 0, fmt.Errorf("%s expects a numeric argument, got %T", name, args[0])
	}
	return v, nil
}
