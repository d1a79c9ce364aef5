package rag

import "fmt"

// EmbeddingError wraps any failure of the embedding backend, including a
// vector coming back with the wrong dimension. It is fatal for the current
// operation and is not retried internally.
type EmbeddingError struct {
	Op  string
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding generation failed (%s): %v", e.Op, e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}

func NewEmbeddingError(op string, err error) *EmbeddingError {
	return &EmbeddingError{Op: op, Err: err}
}

// ProcessingError wraps failures of the retrieval pipeline (search, upsert,
// formatting). Op names the failing step, Id the chapter/content involved.
type ProcessingError struct {
	Op  string
	Id  string
	Err error
}

func (e *ProcessingError) Error() string {
	if e.Id != "" {
		return fmt.Sprintf("rag processing failed (%s, id=%s): %v", e.Op, e.Id, e.Err)
	}
	return fmt.Sprintf("rag processing failed (%s): %v", e.Op, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func NewProcessingError(op, id string, err error) *ProcessingError {
	return &ProcessingError{Op: op, Id: id, Err: err}
}

// ValidationError signals malformed input to the pipeline, e.g. a record
// whose vector length differs from the configured index dimension.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals a referenced chapter or content does not exist.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Id)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, Id: id}
}
