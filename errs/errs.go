// Package errs defines the sentinel errors shared by all tabfit packages.
//
// Every failure mode in the library maps to exactly one of these values so
// callers can branch with errors.Is instead of string matching. Call sites
// wrap them with fmt.Errorf("...: %w", err) when extra context helps.
package errs

import "errors"

// Input validation errors shared by the interpolation and fitting packages.
var (
	// ErrEmptyInput indicates an input sequence with no samples.
	ErrEmptyInput = errors.New("input data is empty")

	// ErrLengthMismatch indicates paired x/y sequences of different lengths.
	ErrLengthMismatch = errors.New("x and y lengths differ")

	// ErrDimensionMismatch indicates grid/table dimensions that disagree, or
	// vector samples of unequal dimension.
	ErrDimensionMismatch = errors.New("dimensions do not match")

	// ErrInsufficientPoints indicates too few samples for the requested
	// degree, order, or interpolation method.
	ErrInsufficientPoints = errors.New("not enough data points")

	// ErrInvalidDomain indicates a query outside the mathematical domain of
	// the operation, e.g. a non-positive value for log interpolation.
	ErrInvalidDomain = errors.New("value outside valid domain")
)

// Numerical errors raised by the solver and the rational evaluator.
var (
	// ErrSingularMatrix indicates a rank-deficient linear system; the
	// normal-equation matrix of the requested fit has no unique solution.
	ErrSingularMatrix = errors.New("matrix is singular or near-singular")

	// ErrNearSingularDenominator indicates evaluation of a rational function
	// at a point where its denominator is numerically zero.
	ErrNearSingularDenominator = errors.New("rational denominator is near zero")
)

// Table format errors raised while encoding or decoding persisted tables.
var (
	// ErrInvalidHeaderSize indicates a table payload shorter than the fixed
	// header.
	ErrInvalidHeaderSize = errors.New("invalid table header size")

	// ErrInvalidMagicNumber indicates data that is not a tabfit table.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidCompressionType indicates an unknown compression identifier
	// in the table header.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrChecksumMismatch indicates a payload whose checksum does not match
	// the header; the data is corrupted or truncated.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrInvalidPayload indicates a payload whose size disagrees with the
	// row and column counts in the header.
	ErrInvalidPayload = errors.New("invalid table payload")
)
