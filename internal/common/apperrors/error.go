// Package apperrors provides the application error type used across the
// marketplace. It implements the standard error interface and adds error
// chaining, status codes, and message expansion so callers can build
// sentinel error trees and derive specific errors from them.
package apperrors

// Error is the interface implemented by all marketplace errors. Derivation
// methods return Error so sentinels can be declared as chains:
//
//	var ErrCatalog = apperrors.New("catalog operation failed")
//	var ErrImport  = ErrCatalog.New("import rejected").SetStatusCode(http.StatusBadRequest)
type Error interface {
	error
	Unwrap() error // supports errors.Is / errors.As against the template chain

	New(msg string) Error                  // derives a fresh error using the current one as template
	Msg(msg string) Error                  // derives an error with a new message, wrapping the current one
	MsgErr(msg string, err ...error) Error // derives an error with a message plus extra wrapped errors
	Err(err ...error) Error                // attaches causes to the current error, keeping its message
	SetExpandError(bool) Error             // controls whether ErrorAll includes wrapped causes
	SetStatusCode(int) Error               // records an HTTP-style status code
	StatusCode() int                       // returns the recorded status code
	ErrorAll() string                      // message including wrapped causes when expansion is on
	UnwrapAll() []error                    // all wrapped causes in attachment order
}
