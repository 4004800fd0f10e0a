package errors

// Error codes for ctypemap
// These codes appear in formatted errors and stay stable across releases
// so that generated-source pipelines can match on them.
//
// Error code ranges:
// E0100-E0199: Declarator and argument-list parser errors
// E0200-E0299: Type registry errors
// E0300-E0399: Configuration errors
// E0400-E0499: Array layout errors

const (
	// Parser errors (E0100-E0199)

	// E0100: Declaration does not end in a recognizable declarator
	ErrorDeclaratorSyntax = "E0100"

	// E0101: Parameter list could not be split into declarations
	ErrorArgListSyntax = "E0101"

	// Type registry errors (E0200-E0299)

	// E0200: Spelling has no registered type
	ErrorUnknownTypeName = "E0200"

	// E0201: Lookup names resolve to more than one type
	ErrorAmbiguousNameSet = "E0201"

	// E0202: Name already bound to a different type
	ErrorConflictingRegistration = "E0202"

	// E0203: Type has no canonical name
	ErrorUnmappedType = "E0203"

	// E0204: Missing type descriptor
	ErrorNullType = "E0204"

	// E0205: No names given
	ErrorEmptyNameSet = "E0205"

	// E0206: Type already registered under another name
	ErrorDuplicateType = "E0206"

	// E0207: Registry no longer accepts registrations
	ErrorFrozenRegistry = "E0207"

	// Configuration errors (E0300-E0399)

	// E0300: Scalar descriptor has a width its kind cannot take
	ErrorInvalidScalar = "E0300"

	// E0301: Alias file is not valid YAML
	ErrorInvalidAliasFile = "E0301"

	// Array layout errors (E0400-E0499)

	// E0400: Strides and shape differ in length
	ErrorShapeMismatch = "E0400"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorDeclaratorSyntax:
		return "Declaration does not end in a C declarator"
	case ErrorArgListSyntax:
		return "Parameter list is not a comma-separated list of declarations"
	case ErrorUnknownTypeName:
		return "Type spelling is not registered"
	case ErrorAmbiguousNameSet:
		return "Type spellings resolve to different types"
	case ErrorConflictingRegistration:
		return "Type spelling is already registered to a different type"
	case ErrorUnmappedType:
		return "Type has no registered C spelling"
	case ErrorNullType:
		return "Type may not be nil"
	case ErrorEmptyNameSet:
		return "At least one type spelling is required"
	case ErrorDuplicateType:
		return "Type is already registered"
	case ErrorFrozenRegistry:
		return "Registry is frozen"
	case ErrorInvalidScalar:
		return "Scalar type description is invalid"
	case ErrorInvalidAliasFile:
		return "Alias file could not be decoded"
	case ErrorShapeMismatch:
		return "Array view needs one stride per axis"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Type Registry"
	case code >= "E0300" && code < "E0400":
		return "Configuration"
	case code >= "E0400" && code < "E0500":
		return "Layout"
	default:
		return "Unknown"
	}
}
