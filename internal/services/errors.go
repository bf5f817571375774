package services

import (
	"errors"
	"fmt"
)

// Input-contract violations. These fail fast, before any partial work.
var (
	ErrInvalidVectorDimension = errors.New("vectors must be 300-dimensional")
	ErrTooFewJobs             = errors.New("minimum 2 jobs required for comparison")
	ErrTooManyJobs            = errors.New("too many jobs for comparison")
	ErrTooFewResumes          = errors.New("minimum 2 resumes required for batch processing")
	ErrTooManyResumes         = errors.New("too many resumes for batch processing")
	ErrMissingJobDescription  = errors.New("job description is required")
	ErrAggregateSizeExceeded  = errors.New("total file size exceeds batch limit")
)

// Extraction error codes. FailedResume entries in a batch reuse the
// same strings.
const (
	CodeFileNotFound    = "FILE_NOT_FOUND"
	CodeInvalidFile     = "INVALID_FILE"
	CodePDFTooLarge     = "PDF_TOO_LARGE"
	CodePDFTooManyPages = "PDF_TOO_MANY_PAGES"
	CodePDFNoText       = "PDF_NO_TEXT"
	CodePDFCorrupted    = "PDF_CORRUPTED"
	CodeProcessingError = "PROCESSING_ERROR"
)

// ExtractionError is a coded failure from the PDF extraction stage.
type ExtractionError struct {
	Code    string
	Message string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewExtractionError(code, format string, args ...any) *ExtractionError {
	return &ExtractionError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// MissingJobFieldError names the offending job and field in a
// multi-job comparison request.
type MissingJobFieldError struct {
	Index int
	Field string
}

func (e *MissingJobFieldError) Error() string {
	return fmt.Sprintf("job %d missing %q field", e.Index+1, e.Field)
}
