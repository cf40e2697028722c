/*
Package value defines the scalar data carried between graph nodes: the closed
set of DataTypes and the Value tagged union. It also bridges values to and
from go-cty so that literals declared in HCL files can be bound to inputs.
*/
package value
