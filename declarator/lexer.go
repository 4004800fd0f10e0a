package declarator

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ArgListLexer tokenizes C parameter lists.
var ArgListLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `/\*([^*]|\*+[^*/])*\*+/|//[^\n]*`, Action: nil},

		// Identifiers, type words and qualifiers
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Array sizes
		{Name: "Integer", Pattern: `[0-9]+`, Action: nil},

		// Pointer stars
		{Name: "Star", Pattern: `\*`, Action: nil},

		// Array brackets
		{Name: "Bracket", Pattern: `[\[\]]`, Action: nil},

		// Separator
		{Name: "Comma", Pattern: `,`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
