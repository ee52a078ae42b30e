package httperr

import "errors"

// Kind classifies rule failures so the HTTP layer can pick a status without
// inspecting individual codes.
type Kind int

const (
	KindValidation Kind = iota
	KindBusiness
	KindNotFound
	KindForbidden
)

type DomainError struct {
	Kind    Kind
	Code    string
	Field   string
	Message string
}

func (e DomainError) Error() string {
	return e.Code
}

func ErrValidation(code, field, message string) error {
	return DomainError{Kind: KindValidation, Code: code, Field: field, Message: message}
}

func ErrBusiness(code, message string) error {
	return DomainError{Kind: KindBusiness, Code: code, Message: message}
}

func ErrBusinessField(code, field, message string) error {
	return DomainError{Kind: KindBusiness, Code: code, Field: field, Message: message}
}

func ErrNotFound(code, message string) error {
	return DomainError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return DomainError{Kind: KindForbidden, Code: code, Message: message}
}

func AsDomain(err error) (DomainError, bool) {
	var de DomainError
	ok := errors.As(err, &de)
	return de, ok
}

func Is(err error, code string) bool {
	de, ok := AsDomain(err)
	return ok && de.Code == code
}

func IsKind(err error, kind Kind) bool {
	de, ok := AsDomain(err)
	return ok && de.Kind == kind
}
