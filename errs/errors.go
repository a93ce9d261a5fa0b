// Package errs defines the sentinel errors shared by stepreg packages.
//
// Callers match them with errors.Is; producers wrap them with fmt.Errorf("...: %w", err)
// to add context such as column names or pass counts.
package errs

import "errors"

// Selection errors.
var (
	// ErrFitFailed indicates the linear fitter could not fit a candidate design.
	ErrFitFailed = errors.New("fit failed")
	// ErrNotConverged indicates the selection loop hit its pass cap.
	ErrNotConverged = errors.New("selection did not converge")
	// ErrInvalidOption indicates an invalid selector option value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrLengthMismatch indicates the target length differs from the frame row count.
	ErrLengthMismatch = errors.New("length mismatch")
)

// Fitting errors.
var (
	// ErrSingularMatrix indicates a rank-deficient or ill-conditioned design matrix.
	ErrSingularMatrix = errors.New("singular design matrix")
	// ErrInsufficientData indicates there are no residual degrees of freedom.
	ErrInsufficientData = errors.New("insufficient observations for fit")
	// ErrNonFinite indicates NaN or Inf values in fit input.
	ErrNonFinite = errors.New("non-finite value in fit input")
)

// Dataset errors.
var (
	// ErrEmptyFrame indicates a frame or table with no rows.
	ErrEmptyFrame = errors.New("empty frame")
	// ErrUnknownColumn indicates a column name not present in the frame.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrDuplicateColumn indicates the same column name was given twice.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrInvalidColumnName indicates an empty column name.
	ErrInvalidColumnName = errors.New("invalid column name")
	// ErrColumnLength indicates a column whose length differs from the frame row count.
	ErrColumnLength = errors.New("column length differs from row count")
	// ErrHashCollision indicates two different column names share an xxHash64 id.
	ErrHashCollision = errors.New("column hash collision")
	// ErrInvalidValue indicates a cell that cannot be parsed as a number.
	ErrInvalidValue = errors.New("invalid numeric value")
)

// ErrInvalidConfig indicates a run configuration that failed validation.
var ErrInvalidConfig = errors.New("invalid config")
