// Package controls renders normalized option lists into HTML form control
// fragments (select, radio group, checkbox group) using pongo2 templates.
//
// Labels are reduced to plain text with a bluemonday strict policy before the
// template auto-escapes them, and color hints only reach the markup when they
// look like a CSS color.
package controls
