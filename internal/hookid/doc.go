/*
Package hookid provides the canonical textual form of wire endpoints.

A hook is written `<instance-key>#<property-id>`, e.g. `p1#content`, and an
edge joins two hooks with `>`, e.g. `n1#return-value>p1#content`. This
package centralizes formatting and parsing of both forms so that log lines,
journal entries and graph files all agree.
*/
package hookid
