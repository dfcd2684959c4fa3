package diagnostics

// Error codes. The prefix names the diagnostic kind.
const (
	// Lexer errors (L prefix)
	ErrUnexpectedCharacter = "L0001"
	ErrUnterminatedCharLit = "L0002"

	// Parser errors (P prefix)
	ErrExpectedToken      = "P0002"
	ErrInvalidExpression  = "P0003"
	ErrInvalidCommand     = "P0004"
	ErrInvalidDeclaration = "P0005"
	ErrMissingIdentifier  = "P0006"
	ErrInvalidParameter   = "P0007"
	ErrTrailingInput      = "P0010"

	// Scope errors (S prefix)
	ErrRedeclaredSymbol = "S0001"

	// Type checker errors (T prefix)
	ErrTypeMismatch       = "T0001"
	ErrNotVariable        = "T0002"
	ErrNotCallable        = "T0003"
	ErrWrongArgumentCount = "T0004"
	ErrWrongParameterMode = "T0005"
	ErrCallRole           = "T0006"
	ErrNonBooleanGuard    = "T0007"
	ErrInvalidOperation   = "T0008"
	ErrNotEntity          = "T0009"
	ErrNotType            = "T0010"

	// Range errors (R prefix)
	ErrLiteralOutOfRange = "R0001"

	// Internal errors (I prefix)
	ErrUnhandledNode = "I0001"
)
