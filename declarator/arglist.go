package declarator

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/tliron/commonlog"

	"ctypemap/errors"
)

var log = commonlog.GetLogger("ctypemap.declarator")

type argList struct {
	Args []*argDecl `parser:"( @@ ( \",\" @@ )* )?"`
}

type argDecl struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Parts  []string `parser:"@( Ident | Integer | Star | Bracket )+"`
}

var argListParser = participle.MustBuild[argList](
	participle.Lexer(ArgListLexer),
	participle.Elide("Whitespace", "Comment"),
)

// ParseArgList splits a parameter list such as "float *a, const int n" at
// top-level commas and parses every declaration with Parse. An empty list
// and "void" yield no arguments.
func ParseArgList[A any](signature string, scalar, vector Factory[A], resolve Resolver) ([]A, error) {
	list, err := argListParser.ParseString("", signature)
	if err != nil {
		return nil, argListError(signature, err)
	}

	if len(list.Args) == 1 && len(list.Args[0].Parts) == 1 && list.Args[0].Parts[0] == "void" {
		return nil, nil
	}

	args := make([]A, 0, len(list.Args))
	for _, decl := range list.Args {
		arg, err := Parse[A](strings.Join(decl.Parts, " "), scalar, vector, resolve)
		if err != nil {
			return nil, relocate(err, signature, decl)
		}
		args = append(args, arg)
	}
	log.Debugf("parsed %d arguments from '%s'", len(args), signature)
	return args, nil
}

// ParseArguments parses a parameter list into default Arguments.
func ParseArguments(signature string, resolve Resolver) ([]Argument, error) {
	return ParseArgList[Argument](signature, NewScalar, NewVector, resolve)
}

func argListError(signature string, err error) error {
	pe, ok := err.(participle.Error)
	if !ok {
		return errors.New(errors.ArgListSyntax, "couldn't parse argument list '%s': %v", signature, err).Build()
	}
	return errors.New(errors.ArgListSyntax, "couldn't parse argument list: %s", pe.Message()).
		WithSource(signature, pe.Position().Offset, 1).
		Build()
}

// relocate rebases a declaration error onto the span of decl in the whole
// parameter list.
func relocate(err error, signature string, decl *argDecl) error {
	e, ok := err.(*errors.Error)
	if !ok {
		return err
	}
	end := min(len(signature), max(decl.Pos.Offset, decl.EndPos.Offset))
	length := len(strings.TrimRight(signature[decl.Pos.Offset:end], " \t\r\n"))
	b := errors.New(e.Kind, "%s", e.Message).
		WithNames(e.Names...).
		WithSource(signature, decl.Pos.Offset, max(1, length))
	for _, note := range e.Notes {
		b = b.WithNote(note)
	}
	return b.Build()
}
