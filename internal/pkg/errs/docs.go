// Package errs provides the error types shared by the checkout service.
//
// Every error type follows the same shape:
//   - a sentinel variable (ErrValueIsRequired, ErrObjectNotFound, ...)
//     that errors.Is matches against;
//   - a struct carrying the offending parameter name and an optional cause;
//   - New...Error and New...ErrorWithCause constructors;
//   - Error() formatting the message and Unwrap() returning the sentinel.
//
// Domain and application code build validation failures from these types
// and combine several of them with errors.Join. The HTTP adapter maps the
// sentinels onto status codes.
package errs
