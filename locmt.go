// Package locmt provides a CLI-driven browser automation tool for game
// localization work. It looks up Steam store descriptions and machine
// translates text line by line through the Papago and Google Translate web
// UIs, reusing a single headless browser session per task.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, slog/) or after the
// provider they drive (steam/, papago/, google/).
package locmt
