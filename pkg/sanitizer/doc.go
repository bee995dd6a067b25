// Package sanitizer provides input normalization functions for user-entered
// search and booking data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// typically by returning empty strings or clamped values rather than errors.
package sanitizer
