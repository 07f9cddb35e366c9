// Package main hosts the ocrcorpus CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, applies flag overrides,
// builds the structured logger and hands off to the internal packages that do
// the actual corpus work. Output meant for humans is rendered as tables;
// --json switches commands to machine-readable output.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
