// Package registry collects node templates and their processors from Go
// modules and HCL manifests, checks that the two agree, and produces the
// Library and Router used by the engine.
package registry
