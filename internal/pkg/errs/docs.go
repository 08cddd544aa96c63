// Package errs provides the standard error types of the tracking service.
//
// Each error kind follows the same pattern: a sentinel error for
// classification with errors.Is, a struct carrying the error details,
// constructors with and without an underlying cause, and an Unwrap
// method pointing at the sentinel. Transport layers map the sentinels
// to status codes; callers never need to parse messages.
package errs
