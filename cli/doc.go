// Package cli holds the cobra commands behind the cmd/ binaries.
//
// Every command follows the same shape: flags are collected into a *Flags
// struct, converted to *Options, then Complete, Validate and Run are called
// in order. Parsing errors surface before any algorithm runs.
//
// Each flag can also be supplied through an environment variable named
// PATHLAB_<FLAG>, dashes replaced by underscores; an explicit flag wins.
// klog verbosity is exposed as --v.
package cli
