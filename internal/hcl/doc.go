/*
Package hcl loads node catalogs and graph programs written in HCL.

# Catalogs

A catalog file declares templates in addition to the built-in ones:

	node "scale" {
	  command "run" {}
	  event   "done" {}
	  input   "factor" {
	    type    = integer
	    default = 2
	  }
	  output  "result" { type = integer }
	}

The `type` attribute is one of the keywords integer, float, boolean or
string. A `default` is converted to that type when the file is loaded.

# Graphs

A graph file places instances of templates and wires their properties:

	instance "integer" "six" {
	  value = 6
	}
	instance "printer" "p1" {}

	connect {
	  from = "six#return-value"
	  to   = "p1#content"
	}

A connection may also be written as one edge: `connect { edge = "a#x>b#y" }`.
Every instance across all files is placed before any attribute is assigned
or any connection is made, so files may reference each other. All graph
rules are enforced by graph.Builder; errors are prefixed with the position
of the block that caused them.
*/
package hcl
