// Package testutil holds helpers shared by package tests: a goroutine-safe
// buffer for capturing logs and printed output, and a logger-carrying
// context.
package testutil
