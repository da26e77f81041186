// Package fbdocs fetches a single Firebase documentation page, extracts its
// main content, optionally filters code examples by programming language,
// and converts the result to Markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, htmltomarkdown/).
package fbdocs
