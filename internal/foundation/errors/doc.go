// Package errors provides the classified error primitives shared by sitenav.
//
// Errors carry a category (config, validation, filesystem, ...), a severity and
// structured context. The CLI adapter turns them into exit codes and log records.
//
// Example usage:
//
//	err := errors.WrapError(readErr, errors.CategoryFileSystem, "read config").
//		WithContext("path", path).
//		Build()
package errors
