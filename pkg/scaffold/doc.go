// Package scaffold generates marketing specifications and project
// skeletons from embedded templates.
//
// Three spec templates ship with the binary: minimal (project only),
// default (a launch plan with one campaign) and full (every entity kind).
package scaffold
