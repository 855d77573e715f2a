package calculator

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrDomain     = errors.New("domain error")
	ErrArithmetic = errors.New("arithmetic error")
)

// 计算过程中的结构化错误，Kind 为上面三个哨兵之一
type EngineError struct {
	Kind  error
	Field string
	Msg   string
}

func (e *EngineError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Msg)
}

func (e *EngineError) Unwrap() error {
	return e.Kind
}

func validationError(field, msg string) error {
	return &EngineError{Kind: ErrValidation, Field: field, Msg: msg}
}

func domainError(field, msg string) error {
	return &EngineError{Kind: ErrDomain, Field: field, Msg: msg}
}

func arithmeticError(field, msg string) error {
	return &EngineError{Kind: ErrArithmetic, Field: field, Msg: msg}
}

// 错误类别名称，用于日志和指标标签
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrDomain):
		return "domain"
	case errors.Is(err, ErrArithmetic):
		return "arithmetic"
	}
	return "unknown"
}
