package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalid   = errors.New("invalid")
	ErrNotFound  = errors.New("not found")
	ErrRead      = errors.New("read failed")
	ErrDirectory = errors.New("directory failed")
)

type Kind string

const (
	KindInvalid   Kind = "invalid"
	KindNotFound  Kind = "not_found"
	KindRead      Kind = "read"
	KindDirectory Kind = "directory"
)

// Error is the value every content operation fails with. Path, Op and Slug
// are filled when known.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Slug string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Kind {
	case KindNotFound:
		fmt.Fprintf(&b, "post %q not found", e.Slug)
	case KindRead:
		fmt.Fprintf(&b, "read %q", e.Path)
	case KindDirectory:
		fmt.Fprintf(&b, "directory %q", e.Path)
	default:
		b.WriteString(string(e.Kind))
	}
	if e.Op != "" {
		fmt.Fprintf(&b, " during %s", e.Op)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalid:
		return e.Kind == KindInvalid
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrRead:
		return e.Kind == KindRead
	case ErrDirectory:
		return e.Kind == KindDirectory
	}
	return false
}

func Invalid(field, msg string) *Error {
	return &Error{Kind: KindInvalid, Msg: fmt.Sprintf("%s: %s", field, msg)}
}

func NotFound(slug string) *Error {
	return &Error{Kind: KindNotFound, Slug: slug}
}

func Read(path, op, slug string, err error) *Error {
	return &Error{Kind: KindRead, Op: op, Path: path, Slug: slug, Err: err}
}

func Directory(path, op string, err error) *Error {
	return &Error{Kind: KindDirectory, Op: op, Path: path, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, ErrInvalid) {
		return KindInvalid
	}
	return ""
}

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationError struct {
	Items []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Items) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed:\n")
	for _, item := range e.Items {
		b.WriteString(" - ")
		b.WriteString(item.Error())
		b.WriteString("\n")
	}
	return b.String()
}

func (e *ValidationError) Add(field, msg string) {
	e.Items = append(e.Items, FieldError{
		Field:   field,
		Message: msg,
	})
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func (e ValidationError) HasAny() bool {
	return len(e.Items) > 0
}
