package game

import "errors"

var (
	// ErrInvalidAction - действие недопустимо для текущего статуса раунда
	ErrInvalidAction = errors.New("недопустимое действие для текущего статуса раунда")
	// ErrMalformedState - состояние раунда повреждено или не согласовано
	ErrMalformedState = errors.New("повреждённое состояние раунда")
	// ErrInvalidBetValue - значение ставки вне допустимой области для типа ставки
	ErrInvalidBetValue = errors.New("значение ставки вне допустимой области")
)
