// Package domain contains the content repository error taxonomy and the
// error value every client operation returns.
// Errors are classified by the operation being attempted (a Kind), never by
// transport details; the cause is layered on as context.
package domain

import (
	"errors"
	"net/http"
	"strings"
)

// Context field names. The set is fixed; rendering order is insertion order.
const (
	FieldURL         = "url"
	FieldKey         = "key"
	FieldRepoMessage = "repoMessage"
)

// Field is one named piece of diagnostic context.
type Field struct {
	Name  string
	Value string
}

// ClientError is the error returned by every repository client operation.
// It is immutable once built.
type ClientError struct {
	kind       Kind
	message    string
	cause      error
	statusCode int
	fields     []Field
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	return e.message
}

// Kind returns the taxonomy entry of the failed operation.
func (e *ClientError) Kind() Kind {
	return e.kind
}

// Message returns the rendered message: the kind template followed by the
// context fields in insertion order.
func (e *ClientError) Message() string {
	return e.message
}

// StatusCode returns the upstream HTTP status, or 0 when no response was received.
func (e *ClientError) StatusCode() int {
	return e.statusCode
}

// Field returns the value recorded for the named context field.
func (e *ClientError) Field(name string) (string, bool) {
	for _, f := range e.fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return "", false
}

// Fields returns a copy of the recorded context fields in insertion order.
func (e *ClientError) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)

	return out
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ClientError) Unwrap() error {
	return e.cause
}

// Is reports whether target is the Kind of this error.
func (e *ClientError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.kind
}

// ErrorBuilder accumulates diagnostic context for one failure.
// It is call-local and not safe for concurrent use.
type ErrorBuilder struct {
	kind       Kind
	fields     []Field
	cause      error
	statusCode int
}

// NewErrorBuilder starts a builder for the given kind with no context.
func NewErrorBuilder(kind Kind) *ErrorBuilder {
	return &ErrorBuilder{kind: kind}
}

// WithURL records the request URL.
func (b *ErrorBuilder) WithURL(url string) *ErrorBuilder {
	return b.set(FieldURL, url)
}

// WithKey records the resource key.
func (b *ErrorBuilder) WithKey(key string) *ErrorBuilder {
	return b.set(FieldKey, key)
}

// WithRepoMessage records the message returned by the repository service.
func (b *ErrorBuilder) WithRepoMessage(msg string) *ErrorBuilder {
	return b.set(FieldRepoMessage, msg)
}

// WithCause attaches the underlying error. The last call wins.
func (b *ErrorBuilder) WithCause(err error) *ErrorBuilder {
	b.cause = err
	return b
}

// WithStatus records the upstream HTTP status. It is not rendered into the message.
func (b *ErrorBuilder) WithStatus(code int) *ErrorBuilder {
	b.statusCode = code
	return b
}

// set overwrites an existing field in place or appends a new one.
func (b *ErrorBuilder) set(name, value string) *ErrorBuilder {
	for i := range b.fields {
		if b.fields[i].Name == name {
			b.fields[i].Value = value
			return b
		}
	}

	b.fields = append(b.fields, Field{Name: name, Value: value})

	return b
}

// Build renders the accumulated state into a ClientError.
// The builder is left untouched and may be built again.
func (b *ErrorBuilder) Build() *ClientError {
	var sb strings.Builder

	sb.WriteString(b.kind.Template())

	for _, f := range b.fields {
		sb.WriteString(", ")
		sb.WriteString(f.Name)
		sb.WriteString(" : ")
		sb.WriteString(f.Value)
	}

	fields := make([]Field, len(b.fields))
	copy(fields, b.fields)

	return &ClientError{
		kind:       b.kind,
		message:    sb.String(),
		cause:      b.cause,
		statusCode: b.statusCode,
		fields:     fields,
	}
}

// NewValidationError builds a caller-input error that carries only a key.
func NewValidationError(kind Kind, key string) *ClientError {
	b := NewErrorBuilder(kind)
	if key != "" {
		b.WithKey(key)
	}

	return b.Build()
}

// KindOf extracts the Kind from the first ClientError in err's chain.
func KindOf(err error) (Kind, bool) {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.kind, true
	}

	return 0, false
}

// IsKind checks if err is a ClientError of the given kind.
func IsKind(err error, kind Kind) bool {
	return errors.Is(err, kind)
}

// IsValidation checks if err was raised for invalid caller input.
func IsValidation(err error) bool {
	k, ok := KindOf(err)
	return ok && k.IsValidation()
}

// IsNotFound checks if the repository answered 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict checks if the repository answered 409.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsTransport checks if the exchange failed before a response was received.
func IsTransport(err error) bool {
	var ce *ClientError
	if !errors.As(err, &ce) {
		return false
	}

	return ce.statusCode == 0 && ce.cause != nil
}

func hasStatus(err error, status int) bool {
	var ce *ClientError
	if !errors.As(err, &ce) {
		return false
	}

	return ce.statusCode == status
}
