package catalog

import "errors"

// Every message is prefixed with "catalog:"; callers match with errors.Is.
var (
	// ErrInvalidName is returned when a name is not an exported Go identifier.
	ErrInvalidName = errors.New("catalog: invalid name")

	// ErrDuplicateName is returned when two entries would generate the same
	// Go identifier.
	ErrDuplicateName = errors.New("catalog: duplicate name")

	// ErrUnknownAxis is returned when a base unit names an axis that is not
	// one of the seven base dimensions.
	ErrUnknownAxis = errors.New("catalog: unknown axis")

	// ErrDuplicateAxis is returned when two base units claim the same axis.
	ErrDuplicateAxis = errors.New("catalog: axis already has a base unit")

	// ErrInvalidRatio is returned when a prefix ratio is not positive.
	ErrInvalidRatio = errors.New("catalog: invalid prefix ratio")

	// ErrBadExpression is returned when a derived expression does not parse.
	ErrBadExpression = errors.New("catalog: malformed dimension expression")

	// ErrUnknownDimension is returned when a derived expression references a
	// name that is neither a base dimension nor an earlier derived one.
	ErrUnknownDimension = errors.New("catalog: unknown dimension")

	// ErrInvalidStorage is returned when a storage kind is not a built-in
	// integer or floating point type.
	ErrInvalidStorage = errors.New("catalog: invalid storage type")

	// ErrEmpty is returned when a catalog declares no base units or no
	// storage kinds.
	ErrEmpty = errors.New("catalog: nothing to generate")
)
