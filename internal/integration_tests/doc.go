// Package integration_tests holds end-to-end tests that drive the app the
// way the CLI does: HCL files in, printed output and journal entries out.
// Each subdirectory groups tests by the behavior they cover.
package integration_tests
