package evaluator

import (
	"fmt"
	"strconv"

	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// evalConvert implements the str(x)/int(x)/float(x) builtin conversions
// the lexer retags as STRCALL/INTCALL/FLOATCALL: str renders any value the
// way it would appear in a composite string; int/float parse strings and
// truncate/widen numbers.
func (c *Context) evalConvert(n *ast.Node, kind string) (*value.Value, error) {
	if len(n.Children) != 1 {
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), fmt.Sprintf("%s(...) takes exactly one argument", kind))
	}
	v, err := c.Eval(n.Children[0])
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, c.newErr(errors.MissingValue, n.Pos(), fmt.Sprintf("%s(...) argument has no value", kind))
	}

	switch kind {
	case "str":
		return value.String(toDisplayString(v)), nil
	case "int":
		return c.convertToInt(v, n)
	case "float":
		return c.convertToFloat(v, n)
	default:
		return nil, c.newErr(errors.ConversionError, n.Pos(), "unknown conversion "+kind)
	}
}

func toDisplayString(v *value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return "null"
	case value.KindBool:
		if v.BoolValue() {
			return "true"
		}
		return "false"
	case value.KindInt:
		return strconv.FormatInt(v.IntValue(), 10)
	case value.KindFloat:
		return strconv.FormatFloat(v.FloatValue(), 'g', -1, 64)
	case value.KindString:
		return v.StringValue()
	default:
		raw, err := v.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

func (c *Context) convertToInt(v *value.Value, n *ast.Node) (*value.Value, error) {
	switch v.Kind() {
	case value.KindInt:
		return v, nil
	case value.KindFloat:
		return value.Int(int64(v.FloatValue())), nil
	case value.KindBool:
		if v.BoolValue() {
			return value.Int(1), nil
		}
		return value.Int(0), nil
	case value.KindString:
		i, err := strconv.ParseInt(v.StringValue(), 10, 64)
		if err != nil {
			return nil, c.newErr(errors.ConversionError, n.Pos(), fmt.Sprintf("cannot convert %q to Int", v.StringValue()))
		}
		return value.Int(i), nil
	default:
		return nil, c.newErr(errors.ConversionError, n.Pos(), "cannot convert "+v.Kind().String()+" to Int")
	}
}

func (c *Context) convertToFloat(v *value.Value, n *ast.Node) (*value.Value, error) {
	switch v.Kind() {
	case value.KindFloat:
		return v, nil
	case value.KindInt:
		return value.Float(float64(v.IntValue())), nil
	case value.KindString:
		f, err := strconv.ParseFloat(v.StringValue(), 64)
		if err != nil {
			return nil, c.newErr(errors.ConversionError, n.Pos(), fmt.Sprintf("cannot convert %q to Float", v.StringValue()))
		}
		return value.Float(f), nil
	default:
		return nil, c.newErr(errors.ConversionError, n.Pos(), "cannot convert "+v.Kind().String()+" to Float")
	}
}
