// Package gateconf implements the configuration-resolution core of the
// appgate host-server extension module: directive registry, per-directive
// setter handlers, the directory- and server-scope cascade merge engine,
// and the one-shot cross-server normalizer.
//
// # Public API surface
//
//   - Records: DirConfig / ServerConfig, created with NewDirConfig and
//     NewServerConfig against a lifescope.Scope.
//
//   - Merging: MergeDir, MergeServer (pairwise, pure — a fresh record is
//     returned and inputs are never mutated), NormalizeServers (fold all
//     server records into one effective record and broadcast it back).
//
//   - Directives: Lookup, Directives, (*Directive).Invoke. Setter failures
//     are *DirectiveError values carrying a fixed human-readable message;
//     the host is expected to print the message and abort the load.
//
// # File organization
//
// Filename prefixes map to package responsibilities:
//
//   - tristate.go, stringset.go, spawn.go: value primitives.
//   - dir_config.go, server_config.go: scope records, defaults and
//     effective-value accessors.
//   - merge_dir.go, merge_server.go, normalize.go: cascade resolution.
//   - registry.go, setters_*.go: the declarative directive table and its
//     validation/assignment handlers.
//
// The package is single-threaded by contract: every operation runs during
// the host's serial configuration-loading phase, before request serving
// begins.
package gateconf
