package errors

import (
	"net/http"

	"romaneio/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Login ou senha incorretos",
		"",
	)

	ErrUserInactive = NewBaseError(
		http.StatusUnauthorized,
		"USER_INACTIVE",
		"Usuário desativado",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Este login já está em uso",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erro ao processar a senha",
		"",
	)

	// Client and address errors
	ErrClientNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_NOT_FOUND",
		"Cliente não encontrado",
		"",
	)

	ErrClientAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CLIENT_ALREADY_EXISTS",
		"Já existe um cliente com este CPF",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Endereço não encontrado",
		"",
	)

	// Courier errors
	ErrCourierNotFound = NewBaseError(
		http.StatusNotFound,
		"COURIER_NOT_FOUND",
		"Motoboy não encontrado",
		"",
	)

	ErrPaymentVersionConflict = NewBaseError(
		http.StatusConflict,
		"PAYMENT_VERSION_CONFLICT",
		"O pagamento da semana foi alterado por outra sessão",
		"",
	)

	// Delivery errors
	ErrDeliveryNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_NOT_FOUND",
		"Entrega não encontrada",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Status de entrega desconhecido",
		"",
	)

	ErrInvalidPeriod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PERIOD",
		"Período inválido",
		"",
	)

	// Mail shipment errors
	ErrShipmentNotFound = NewBaseError(
		http.StatusNotFound,
		"SHIPMENT_NOT_FOUND",
		"Envio não encontrado",
		"",
	)

	// Device gate errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Dispositivo não encontrado",
		"",
	)

	ErrDeviceBlocked = NewBaseError(
		http.StatusForbidden,
		"DEVICE_BLOCKED",
		"Este dispositivo está bloqueado",
		"",
	)

	ErrDevicePending = NewBaseError(
		http.StatusForbidden,
		"DEVICE_PENDING",
		"Dispositivo aguardando aprovação do administrador",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Registro não encontrado",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falha na transação do banco de dados",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected persistence failure.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(
		NewBaseError(http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao acessar o banco de dados", err.Error()),
		message,
	)
}
