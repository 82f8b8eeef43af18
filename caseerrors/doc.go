// Package caseerrors provides structured error types for caseconv.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish error categories without
// string matching.
//
// # Error Categories
//
//   - InvalidInputError: a value passed to a conversion function was present
//     but not textual
//
// # Usage with errors.As
//
//	out, err := caseconv.ToKebabCase(123)
//	if err != nil {
//	    var inputErr *caseerrors.InvalidInputError
//	    if errors.As(err, &inputErr) {
//	        fmt.Printf("got %s, expected a string\n", inputErr.TypeName)
//	    }
//	}
//
// # Usage with errors.Is
//
//	if errors.Is(err, caseerrors.ErrInvalidInput) {
//	    // reject the value
//	}
package caseerrors
