package hookid

// Address is the parsed form of a hook: an instance key and a property id.
type Address struct {
	Instance string
	Property string
}

// String serializes the Address as "instance#property".
func (a Address) String() string {
	return a.Instance + "#" + a.Property
}

// Edge is the parsed form of a wire between two hooks.
type Edge struct {
	Source Address
	Target Address
}

// String serializes the Edge as "source>target".
func (e Edge) String() string {
	return e.Source.String() + ">" + e.Target.String()
}
