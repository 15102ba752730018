// Data model for user-defined fitting functions
package function

import (
	"fmt"
	"strconv"
	"strings"
)

// Parameter count bounds for a custom function.
const (
	MinParameters = 1
	MaxParameters = 10
)

// ParameterSpec is one named, valued, described input to a custom function.
type ParameterSpec struct {
	Name         string
	InitialValue float64
	Description  string
}

// Definition is the saved artifact of the custom-function dialog: a display
// name, an expression over the parameters and the variable x, and the
// ordered parameter list. It is immutable once handed to the caller.
type Definition struct {
	Name       string
	Expression string
	Params     []ParameterSpec
}

// ParamValues returns the parameter name -> initial value binding used for
// preview and smoke-test evaluation.
func (d Definition) ParamValues() map[string]float64 {
	values := make(map[string]float64, len(d.Params))
	for _, p := range d.Params {
		values[p.Name] = p.InitialValue
	}
	return values
}

// DefaultParameterName returns the default name for the parameter at the
// given row index: "a".."z" for the first 26 rows, "p<index>" after that.
func DefaultParameterName(index int) string {
	if index >= 0 && index < 26 {
		return string(rune('a' + index))
	}
	return fmt.Sprintf("p%d", index)
}

// DraftParameter is one parameter row as entered in the dialog, before
// validation. Value is the raw text of the initial-value cell.
type DraftParameter struct {
	Name        string
	Value       string
	Description string
}

// Draft is the in-progress form state of the dialog. It only becomes a
// Definition through Finalize.
type Draft struct {
	Name       string
	Expression string
	Params     []DraftParameter
}

// SmokeTest is the trial evaluation run against an assembled definition
// before it is accepted. It confirms the expression is well-formed and
// evaluable with the entered parameter values.
type SmokeTest func(Definition) error

// Finalize validates the draft in field order and, on success, returns the
// immutable Definition. The checks run in the order the form presents them:
// function name, expression, then each parameter row (name, then value),
// then the smoke test. The first failure aborts with a ValidationError and
// the draft is left untouched.
func (d Draft) Finalize(smoke SmokeTest) (Definition, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Definition{}, invalidf(ErrMissingName, "please enter a function name")
	}

	expression := strings.TrimSpace(d.Expression)
	if expression == "" {
		return Definition{}, invalidf(ErrMissingExpression, "please enter a function expression")
	}

	params := make([]ParameterSpec, 0, len(d.Params))
	for i, row := range d.Params {
		paramName := strings.TrimSpace(row.Name)
		if paramName == "" {
			return Definition{}, invalidf(ErrMissingParameterName, "parameter %d needs a name", i+1)
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(row.Value), 64)
		if err != nil {
			return Definition{}, invalidf(ErrInvalidParameterValue, "invalid initial value for parameter %s", paramName)
		}

		params = append(params, ParameterSpec{
			Name:         paramName,
			InitialValue: value,
			Description:  strings.TrimSpace(row.Description),
		})
	}

	def := Definition{
		Name:       name,
		Expression: expression,
		Params:     params,
	}

	if smoke != nil {
		if err := smoke(def); err != nil {
			return Definition{}, &ValidationError{Kind: ErrEvaluation, Msg: err.Error()}
		}
	}

	return def, nil
}
