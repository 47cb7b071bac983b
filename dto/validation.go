package dto

import (
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors は入力エラーをフィールド名→メッセージの形に変換する。
// helps にはフィールドごとのヘルプ文言を渡す。
// ボディが空の場合は必須フィールドすべてを不足として扱う。
func FieldErrors(input interface{}, err error, helps map[string]string) (map[string]string, bool) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		t := reflect.TypeOf(input)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		for _, fe := range validationErrors {
			name := jsonName(t, fe.StructField())
			fields[name] = helps[name]
		}
		return fields, true
	}

	if errors.Is(err, io.EOF) {
		return requiredFields(input, helps), true
	}

	return nil, false
}

func requiredFields(input interface{}, helps map[string]string) map[string]string {
	fields := map[string]string{}
	t := reflect.TypeOf(input)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if strings.Contains(f.Tag.Get("binding"), "required") {
			name := jsonName(t, f.Name)
			fields[name] = helps[name]
		}
	}
	return fields
}

func jsonName(t reflect.Type, field string) string {
	f, ok := t.FieldByName(field)
	if !ok {
		return field
	}
	tag := strings.Split(f.Tag.Get("json"), ",")[0]
	if tag == "" {
		return field
	}
	return tag
}
