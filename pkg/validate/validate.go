package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Валидатор входящих DTO на базе go-playground/validator
// с кастомными правилами для email и телефона

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
var nonDigits = regexp.MustCompile(`[^0-9]`)

// Validator обертка над validator.Validate с кастомными правилами
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор и регистрирует кастомные правила:
//   - booking_email: email с запретом последовательных точек и точки/@ в начале
//   - digits_only: строка состоит только из цифр
func New() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("booking_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})

	_ = v.RegisterValidation("digits_only", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || !nonDigits.MatchString(value)
	})

	return &Validator{validate: v}
}

// Struct валидирует структуру по тегам validate
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FirstError возвращает сообщение по первой нарушенной проверке
// Пустая строка, если ошибка не является ошибкой валидации
func (v *Validator) FirstError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ""
	}
	e := verrs[0]
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "booking_email":
		return "Please enter a valid email address"
	case "digits_only":
		return e.Field() + " must contain digits only"
	case "min", "gte":
		return e.Field() + " is below the allowed minimum"
	case "max", "lte":
		return e.Field() + " is above the allowed maximum"
	default:
		return e.Field() + " is invalid"
	}
}

// IsValidEmail проверяет email по правилам букинга:
// стандартный шаблон local@domain.tld, запрет последовательных точек,
// запрет точки и @ в начале строки
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	if strings.HasPrefix(email, ".") || strings.HasPrefix(email, "@") {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}
	return emailPattern.MatchString(email)
}

// SanitizePhone удаляет из строки все символы, кроме цифр
// Применяется и к вводу с клавиатуры, и к вставке из буфера
func SanitizePhone(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}
