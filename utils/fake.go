package utils

import (
	"reflect"

	"github.com/go-faker/faker/v4"
	"github.com/go-faker/faker/v4/pkg/options"
)

// FakeStruct returns a faked dbmodel plus its values in ColumnList order,
// ready to be fed to pgxmock's AddRow.
func FakeStruct[T any](opts ...options.OptionFunc) (T, []any) {
	var model T
	if err := faker.FakeData(&model, opts...); err != nil {
		panic(err)
	}
	return model, rowOf(model)
}

// FakeStructs is FakeStruct, n times.
func FakeStructs[T any](n int, opts ...options.OptionFunc) ([]T, [][]any) {
	structs := make([]T, n)
	rows := make([][]any, n)
	for i := 0; i < n; i++ {
		structs[i], rows[i] = FakeStruct[T](opts...)
	}
	return structs, rows
}

func rowOf(model any) []any {
	v := reflect.ValueOf(model)
	t := v.Type()

	row := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			row = append(row, rowOf(v.Field(i).Interface())...)
			continue
		}
		if tag, ok := field.Tag.Lookup("db"); !ok || tag == "-" {
			continue
		}
		row = append(row, v.Field(i).Interface())
	}
	return row
}
