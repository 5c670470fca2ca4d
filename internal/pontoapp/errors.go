package pontoapp

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrMissingInput = errors.New("missing input")
	ErrProcessing   = errors.New("processing failed")
	ErrLaunch       = errors.New("could not open report")
)

// Error carries one of the sentinel kinds above together with the message
// shown to the user.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

func processingError(err error) error {
	return &Error{Kind: ErrProcessing, Message: fmt.Sprintf("Falha ao processar o ficheiro: %v", err), Err: err}
}

func launchError(err error) error {
	return &Error{Kind: ErrLaunch, Message: fmt.Sprintf("Não foi possível abrir o relatório: %v", err), Err: err}
}

// Message renders err as the single line reported to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fmt.Sprintf("Erro: %v", err)
}
