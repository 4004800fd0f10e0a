package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes ctypemap failures.
type Kind uint8

const (
	// UnknownTypeName indicates a spelling with no registered type.
	UnknownTypeName Kind = iota

	// AmbiguousNameSet indicates lookup names that resolve to different types.
	AmbiguousNameSet

	// ConflictingRegistration indicates a name re-registered against another type.
	ConflictingRegistration

	// UnmappedType indicates a type with no canonical name.
	UnmappedType

	// NullType indicates a missing type descriptor.
	NullType

	// DeclaratorSyntax indicates a declaration without a trailing declarator.
	DeclaratorSyntax

	// ArgListSyntax indicates a parameter list that could not be split.
	ArgListSyntax

	// EmptyNameSet indicates a call with no names.
	EmptyNameSet

	// DuplicateType indicates a distinct registration of an already known type.
	DuplicateType

	// FrozenRegistry indicates a mutation after Freeze.
	FrozenRegistry

	// InvalidScalar indicates a malformed scalar descriptor.
	InvalidScalar

	// InvalidAliasFile indicates an alias file that is not valid YAML.
	InvalidAliasFile

	// ShapeMismatch indicates a view whose strides do not match its shape.
	ShapeMismatch
)

// String returns a human-readable error kind name.
func (k Kind) String() string {
	switch k {
	case UnknownTypeName:
		return "UnknownTypeName"
	case AmbiguousNameSet:
		return "AmbiguousNameSet"
	case ConflictingRegistration:
		return "ConflictingRegistration"
	case UnmappedType:
		return "UnmappedType"
	case NullType:
		return "NullType"
	case DeclaratorSyntax:
		return "DeclaratorSyntaxError"
	case ArgListSyntax:
		return "ArgListSyntaxError"
	case EmptyNameSet:
		return "EmptyNameSet"
	case DuplicateType:
		return "DuplicateType"
	case FrozenRegistry:
		return "FrozenRegistry"
	case InvalidScalar:
		return "InvalidScalar"
	case InvalidAliasFile:
		return "InvalidAliasFile"
	case ShapeMismatch:
		return "ShapeMismatch"
	default:
		return "Unknown"
	}
}

// Code returns the stable error code for the kind.
func (k Kind) Code() string {
	switch k {
	case UnknownTypeName:
		return ErrorUnknownTypeName
	case AmbiguousNameSet:
		return ErrorAmbiguousNameSet
	case ConflictingRegistration:
		return ErrorConflictingRegistration
	case UnmappedType:
		return ErrorUnmappedType
	case NullType:
		return ErrorNullType
	case DeclaratorSyntax:
		return ErrorDeclaratorSyntax
	case ArgListSyntax:
		return ErrorArgListSyntax
	case EmptyNameSet:
		return ErrorEmptyNameSet
	case DuplicateType:
		return ErrorDuplicateType
	case FrozenRegistry:
		return ErrorFrozenRegistry
	case InvalidScalar:
		return ErrorInvalidScalar
	case InvalidAliasFile:
		return ErrorInvalidAliasFile
	case ShapeMismatch:
		return ErrorShapeMismatch
	default:
		return ""
	}
}

// Position is a 1-based location inside a declaration or parameter list.
type Position struct {
	Line   int
	Column int
}

// Error is the structured failure returned by every ctypemap package.
type Error struct {
	Kind     Kind
	Code     string    // Error code like E0200
	Message  string    // Primary error message
	Names    []string  // C spellings involved, if any
	Source   string    // Declaration or parameter list being parsed
	Position *Position // Location in Source (optional)
	Length   int       // Length of the problematic region
	Notes    []string  // Additional context notes
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position != nil {
		return fmt.Sprintf("%s[%s] at %d:%d: %s", e.Kind, e.Code, e.Position.Line, e.Position.Column, e.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", e.Kind, e.Code, e.Message)
}

// Is reports whether target is an *Error of the same kind, so the
// package-level sentinels work with the standard errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is matching.
var (
	ErrUnknownTypeName         = &Error{Kind: UnknownTypeName, Code: ErrorUnknownTypeName}
	ErrAmbiguousNameSet        = &Error{Kind: AmbiguousNameSet, Code: ErrorAmbiguousNameSet}
	ErrConflictingRegistration = &Error{Kind: ConflictingRegistration, Code: ErrorConflictingRegistration}
	ErrUnmappedType            = &Error{Kind: UnmappedType, Code: ErrorUnmappedType}
	ErrNullType                = &Error{Kind: NullType, Code: ErrorNullType}
	ErrDeclaratorSyntax        = &Error{Kind: DeclaratorSyntax, Code: ErrorDeclaratorSyntax}
	ErrArgListSyntax           = &Error{Kind: ArgListSyntax, Code: ErrorArgListSyntax}
	ErrEmptyNameSet            = &Error{Kind: EmptyNameSet, Code: ErrorEmptyNameSet}
	ErrDuplicateType           = &Error{Kind: DuplicateType, Code: ErrorDuplicateType}
	ErrFrozenRegistry          = &Error{Kind: FrozenRegistry, Code: ErrorFrozenRegistry}
	ErrInvalidScalar           = &Error{Kind: InvalidScalar, Code: ErrorInvalidScalar}
	ErrInvalidAliasFile        = &Error{Kind: InvalidAliasFile, Code: ErrorInvalidAliasFile}
	ErrShapeMismatch           = &Error{Kind: ShapeMismatch, Code: ErrorShapeMismatch}
)

// Builder provides a fluent interface for assembling an Error.
type Builder struct {
	err Error
}

// New starts an error of the given kind.
func New(kind Kind, format string, args ...any) *Builder {
	return &Builder{
		err: Error{
			Kind:    kind,
			Code:    kind.Code(),
			Message: fmt.Sprintf(format, args...),
			Length:  1,
		},
	}
}

// WithNames records the spellings involved.
func (b *Builder) WithNames(names ...string) *Builder {
	b.err.Names = append(b.err.Names, names...)
	return b
}

// WithSource attaches the text being parsed and the offending span.
// offset is a 0-based byte offset into source.
func (b *Builder) WithSource(source string, offset, length int) *Builder {
	b.err.Source = source
	b.err.Position = positionOf(source, offset)
	b.err.Length = length
	return b
}

// At attaches an explicit position without source text.
func (b *Builder) At(line, column int) *Builder {
	b.err.Position = &Position{Line: line, Column: column}
	return b
}

// WithNote adds a note to the error
func (b *Builder) WithNote(note string) *Builder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// Build returns the completed error.
func (b *Builder) Build() *Error {
	err := b.err
	return &err
}

func positionOf(source string, offset int) *Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}
	before := source[:offset]
	line := strings.Count(before, "\n") + 1
	column := offset - strings.LastIndex(before, "\n")
	return &Position{Line: line, Column: column}
}

// Common constructors

// UnknownType creates an error for a spelling with no registered type.
func UnknownType(name string) *Error {
	return New(UnknownTypeName, "unknown type '%s'", name).WithNames(name).Build()
}

// Ambiguous creates an error for lookup names that resolve to different types.
func Ambiguous(names []string, types []string) *Error {
	return New(AmbiguousNameSet, "names '%s' resolve to different types (%s)",
		strings.Join(names, "', '"), strings.Join(types, ", ")).
		WithNames(names...).
		Build()
}

// Conflict creates an error for a name already bound to a different type.
func Conflict(name, existing, requested string) *Error {
	return New(ConflictingRegistration, "name '%s' already registered to different type (%s, not %s)",
		name, existing, requested).
		WithNames(name).
		WithNote("the registry may be partially updated; abort the registration batch").
		Build()
}

// Unmapped creates an error for a type without a canonical name.
func Unmapped(typ string) *Error {
	return New(UnmappedType, "unable to map type '%s'", typ).Build()
}

// Null creates the error for a missing type descriptor.
func Null() *Error {
	return New(NullType, "type may not be nil").Build()
}

// IsConflict returns true if err is a ConflictingRegistration error.
func (e *Error) IsConflict() bool {
	return e.Kind == ConflictingRegistration
}

// IsSyntax returns true if err is a declarator or argument-list syntax error.
func (e *Error) IsSyntax() bool {
	return e.Kind == DeclaratorSyntax || e.Kind == ArgListSyntax
}
