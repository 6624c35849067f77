package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationMessage turns the first failed rule into a readable message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Неверные данные"
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Поле %s обязательно", field)
	case "email":
		return "Неверный формат email"
	case "min":
		return fmt.Sprintf("Поле %s должно быть не короче %s символов", field, fe.Param())
	case "max":
		return fmt.Sprintf("Поле %s должно быть не длиннее %s символов", field, fe.Param())
	case "alphanum":
		return fmt.Sprintf("Поле %s может содержать только буквы и цифры", field)
	default:
		return fmt.Sprintf("Неверное значение поля %s", field)
	}
}
