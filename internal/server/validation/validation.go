// Package validation проверяет тела запросов по тегам validate
// (go-playground/validator) и собирает ошибки в формат API.
//
// Имя поля в ответе берётся из json тега, текст ошибки из тега msg.
// Тег msg_<правило> (например msg_notblank) перекрывает msg для одного правила.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

// LocationBody — значение location для полей тела запроса.
const LocationBody = "body"

// Errors — список ошибок валидации полей в порядке объявления полей структуры.
type Errors []shared.FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Param+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator — обёртка над *validator.Validate.
// Безопасен для конкурентного использования.
type Validator struct {
	v *validator.Validate
}

// New создаёт Validator, который называет поля по json тегу.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// строка не пустая после обрезки пробелов
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// Struct проверяет структуру s.
//
// Возвращает nil, Errors с ошибками полей или другую ошибку,
// если s не является структурой.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, shared.FieldError{
			Msg:      message(t, fe),
			Param:    fe.Field(),
			Location: LocationBody,
		})
	}
	return out
}

// message берёт текст из тега msg_<правило> или msg, иначе "Invalid value".
func message(t reflect.Type, fe validator.FieldError) string {
	if f, ok := t.FieldByName(fe.StructField()); ok {
		if m := f.Tag.Get("msg_" + fe.Tag()); m != "" {
			return m
		}
		if m := f.Tag.Get("msg"); m != "" {
			return m
		}
	}
	return "Invalid value"
}
