package pens

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// entry is one parsed override line: "<edgeID> <direction 0-7> <penalty>".
// Captured as raw number strings and converted in Parse so the grammar
// stays agnostic to int-vs-float formatting of the penalty column.
type entry struct {
	EdgeID    string `@Number`
	Direction string `@Number`
	Penalty   string `@Number`
}

// table is the whole file: zero or more entries, blank lines, comments
// and whitespace elided by the lexer.
type table struct {
	Entries []*entry `@@*`
}

var penLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

var penParser = participle.MustBuild[table](
	participle.Lexer(penLexer),
	participle.Elide("whitespace", "Comment"),
)
