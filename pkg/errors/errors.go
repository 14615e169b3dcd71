// Package errors provides custom error types for the sheetsmith system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the sheetsmith system
var (
	// ErrNotFound indicates that a requested file, sheet, or column was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput indicates that zero inputs were supplied where at least one is required
	ErrEmptyInput = errors.New("empty input")

	// ErrInsufficientInputs indicates that fewer inputs were supplied than required
	ErrInsufficientInputs = errors.New("insufficient inputs")

	// ErrColumnMismatch indicates a strict-mode column schema conflict
	ErrColumnMismatch = errors.New("column mismatch")
)

// SourceNotFoundError represents an error when an input path does not exist
type SourceNotFoundError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// Unwrap implements errors.Unwrap
func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewSourceNotFoundError creates a new SourceNotFoundError
func NewSourceNotFoundError(path string, err error) *SourceNotFoundError {
	return &SourceNotFoundError{Path: path, Err: err}
}

// ParseError represents an error when parsing a data format
type ParseError struct {
	Format  string // "csv", "xlsx"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s file %s at line %d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// EmptyInputError indicates an operation received zero inputs
type EmptyInputError struct {
	Operation string
}

// Error implements the error interface
func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s requires at least one input, got none", e.Operation)
}

// Is implements errors.Is support
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// NewEmptyInputError creates a new EmptyInputError
func NewEmptyInputError(operation string) *EmptyInputError {
	return &EmptyInputError{Operation: operation}
}

// InsufficientInputsError indicates an operation received fewer inputs than required
type InsufficientInputsError struct {
	Operation string
	Required  int
	Got       int
}

// Error implements the error interface
func (e *InsufficientInputsError) Error() string {
	return fmt.Sprintf("%s requires at least %d inputs, got %d", e.Operation, e.Required, e.Got)
}

// Is implements errors.Is support
func (e *InsufficientInputsError) Is(target error) bool {
	return target == ErrInsufficientInputs
}

// NewInsufficientInputsError creates a new InsufficientInputsError
func NewInsufficientInputsError(operation string, required, got int) *InsufficientInputsError {
	return &InsufficientInputsError{Operation: operation, Required: required, Got: got}
}

// JoinKeyNotFoundError indicates a join key column is absent from a table
type JoinKeyNotFoundError struct {
	Key     string
	Table   string // "left", "right", or a file/sheet name
	Columns []string
}

// Error implements the error interface
func (e *JoinKeyNotFoundError) Error() string {
	return fmt.Sprintf("join key %q not found in %s table (columns: %s)",
		e.Key, e.Table, strings.Join(e.Columns, ", "))
}

// Is implements errors.Is support
func (e *JoinKeyNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewJoinKeyNotFoundError creates a new JoinKeyNotFoundError
func NewJoinKeyNotFoundError(key, table string, columns []string) *JoinKeyNotFoundError {
	return &JoinKeyNotFoundError{Key: key, Table: table, Columns: columns}
}

// KeyColumnNotFoundError indicates a diff key column is absent from one side
type KeyColumnNotFoundError struct {
	Column string
	Side   string // "A" or "B"
}

// Error implements the error interface
func (e *KeyColumnNotFoundError) Error() string {
	return fmt.Sprintf("key column %q not found in table %s", e.Column, e.Side)
}

// Is implements errors.Is support
func (e *KeyColumnNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewKeyColumnNotFoundError creates a new KeyColumnNotFoundError
func NewKeyColumnNotFoundError(column, side string) *KeyColumnNotFoundError {
	return &KeyColumnNotFoundError{Column: column, Side: side}
}

// ColumnMismatchError indicates a strict-mode schema conflict between sources
type ColumnMismatchError struct {
	Sheet            string // empty for CSV unions
	Reference        string // source that established the reference columns
	ReferenceColumns []string
	Source           string // deviating source
	Columns          []string
}

// Error implements the error interface
func (e *ColumnMismatchError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("column mismatch in strict mode for sheet %q: reference (%s): [%s], got (%s): [%s]",
			e.Sheet, e.Reference, strings.Join(e.ReferenceColumns, ", "),
			e.Source, strings.Join(e.Columns, ", "))
	}
	return fmt.Sprintf("column mismatch in strict mode: reference (%s): [%s], got (%s): [%s]",
		e.Reference, strings.Join(e.ReferenceColumns, ", "),
		e.Source, strings.Join(e.Columns, ", "))
}

// Is implements errors.Is support
func (e *ColumnMismatchError) Is(target error) bool {
	return target == ErrColumnMismatch
}

// NewColumnMismatchError creates a new ColumnMismatchError
func NewColumnMismatchError(sheet, reference string, referenceColumns []string, source string, columns []string) *ColumnMismatchError {
	return &ColumnMismatchError{
		Sheet:            sheet,
		Reference:        reference,
		ReferenceColumns: referenceColumns,
		Source:           source,
		Columns:          columns,
	}
}

// SheetNotFoundError indicates a sheet name was not found in any input workbook
type SheetNotFoundError struct {
	Sheet string
	Files []string
}

// Error implements the error interface
func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found in any of the %d provided files", e.Sheet, len(e.Files))
}

// Is implements errors.Is support
func (e *SheetNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewSheetNotFoundError creates a new SheetNotFoundError
func NewSheetNotFoundError(sheet string, files []string) *SheetNotFoundError {
	return &SheetNotFoundError{Sheet: sheet, Files: files}
}

// NoCommonSheetsError indicates the sheet-name intersection across workbooks is empty
type NoCommonSheetsError struct {
	Files []string
}

// Error implements the error interface
func (e *NoCommonSheetsError) Error() string {
	return fmt.Sprintf("no common sheets found across %d files", len(e.Files))
}

// Is implements errors.Is support
func (e *NoCommonSheetsError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNoCommonSheetsError creates a new NoCommonSheetsError
func NewNoCommonSheetsError(files []string) *NoCommonSheetsError {
	return &NoCommonSheetsError{Files: files}
}

// InvalidPolicyError indicates an unrecognized merge policy value
type InvalidPolicyError struct {
	Policy string
	Valid  []string
}

// Error implements the error interface
func (e *InvalidPolicyError) Error() string {
	return fmt.Sprintf("invalid merge policy %q: must be one of: %s", e.Policy, strings.Join(e.Valid, ", "))
}

// Is implements errors.Is support
func (e *InvalidPolicyError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInvalidPolicyError creates a new InvalidPolicyError
func NewInvalidPolicyError(policy string, valid []string) *InvalidPolicyError {
	return &InvalidPolicyError{Policy: policy, Valid: valid}
}

// InvalidJoinKindError indicates an unrecognized join kind value
type InvalidJoinKindError struct {
	Kind  string
	Valid []string
}

// Error implements the error interface
func (e *InvalidJoinKindError) Error() string {
	return fmt.Sprintf("invalid join kind %q: must be one of: %s", e.Kind, strings.Join(e.Valid, ", "))
}

// Is implements errors.Is support
func (e *InvalidJoinKindError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInvalidJoinKindError creates a new InvalidJoinKindError
func NewInvalidJoinKindError(kind string, valid []string) *InvalidJoinKindError {
	return &InvalidJoinKindError{Kind: kind, Valid: valid}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsEmptyInput checks if an error is an empty input error
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

// IsColumnMismatch checks if an error is a strict-mode column mismatch
func IsColumnMismatch(err error) bool {
	return errors.Is(err, ErrColumnMismatch)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
