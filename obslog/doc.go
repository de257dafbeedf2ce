// Package obslog gives the optimizer pipeline structured lines at Info
// level for its main steps (model build starting, variables emitted,
// constraints emitted, solve skipped or solve finished with its elapsed
// time, decode finished), and the sizes of the model's index universes
// at Debug level, built on charmbracelet/log the way the teacher's CLI
// logging does.
//
// A zero Logger has no underlying logger and panics when used; loggers
// come from New, NewNop, Default or With. NewNop returns a logger
// writing to io.Discard, and Optimize, ilp.Build and decode.Decode use
// it when given a nil *Logger, so nothing prints unless the caller opts
// in with New.
package obslog
