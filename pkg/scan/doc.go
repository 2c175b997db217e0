// Package scan implements the dependency extraction engine.
//
// The engine consumes a stream of candidate file paths, classifies each path
// against the active ecosystem's manifest formats, extracts the dependency
// names declared in recognized files, and aggregates them into a
// name-to-files index that answers membership queries.
//
// Manifest formats are pluggable: each format implements the Extractor
// interface, and an Ecosystem bundles the extractor set for one package
// universe (Python or JavaScript). Extractors may also report references to
// further manifest files (pip's "-r other.txt" includes); the Scanner follows
// these breadth-first with a shared visited set, so reference cycles always
// terminate.
//
// Per-file failures (unreadable files, malformed content, dangling
// references) are reported through the Options warning callback and never
// abort a scan.
package scan
