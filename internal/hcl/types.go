package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/graphflow/internal/value"
)

// dataTypeFromExpr reads a type keyword such as `integer`.
func dataTypeFromExpr(expr hcl.Expression) (value.DataType, hcl.Diagnostics) {
	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() || len(traversal) != 1 {
		return 0, hcl.Diagnostics{diagError(expr.Range(),
			"Invalid type specification",
			"The 'type' attribute must be one of the keywords integer, float, boolean or string.",
		)}
	}

	name := traversal.RootName()
	dt, err := value.ParseDataType(name)
	if err != nil {
		return 0, hcl.Diagnostics{diagError(expr.Range(),
			"Unsupported type",
			fmt.Sprintf("The keyword '%s' is not a valid type. Supported types are: integer, float, boolean, string.", name),
		)}
	}
	return dt, nil
}

// literalFromExpr evaluates a constant expression into a Value of type dt.
func literalFromExpr(expr hcl.Expression, dt value.DataType) (value.Value, hcl.Diagnostics) {
	cv, diags := expr.Value(nil)
	if diags.HasErrors() {
		return value.Value{}, diags
	}
	v, err := value.FromCty(cv, dt)
	if err != nil {
		return value.Value{}, hcl.Diagnostics{diagError(expr.Range(), "Incorrect value type", err.Error())}
	}
	return v, nil
}
