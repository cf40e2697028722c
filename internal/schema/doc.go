/*
Package schema declares the catalog of node templates available to graphs.

A Node (template) enumerates typed properties: Events and Commands for
control flow, Inputs and Outputs for data. A Schema maps NodeIDs to Nodes.
Both are immutable once built and are assembled at startup by trusted code,
so a duplicate id is a programmer error and panics.
*/
package schema
