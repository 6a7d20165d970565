// ABOUTME: Root package providing version information and package documentation
// ABOUTME: This is the root package for the heap dump retention analysis tool

// Package heapdom provides a heap dump retention analysis tool: it parses a
// Ruby ObjectSpace.dump_all-style heap dump, builds the reference graph,
// computes a dominator tree over it, and reports which objects and types are
// retaining the most memory.
package heapdom

// Version is the semantic version of the heapdom tool.
const Version = "0.1.0-dev"
