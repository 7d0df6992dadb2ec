package httperr

import "errors"

type Kind string

const (
	KindValidation      Kind = "validation"
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindInternal        Kind = "internal"
)

// BusinessError is returned by use cases; Message is shown to the client as is.
type BusinessError struct {
	Kind    Kind
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrBusiness(kind Kind, message string) error {
	return BusinessError{Kind: kind, Message: message}
}

func Validation(message string) error      { return ErrBusiness(KindValidation, message) }
func Unauthenticated(message string) error { return ErrBusiness(KindUnauthenticated, message) }
func Forbidden(message string) error       { return ErrBusiness(KindForbidden, message) }
func NotFoundErr(message string) error     { return ErrBusiness(KindNotFound, message) }
func Conflict(message string) error        { return ErrBusiness(KindConflict, message) }
func InternalErr(message string) error     { return ErrBusiness(KindInternal, message) }

func IsBusiness(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
