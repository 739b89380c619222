package utils

import (
	"reflect"
)

// ColumnList returns the `db` tags of T's fields, in declaration order,
// prefixed with alias when given. Embedded structs are flattened, which is
// how joined dbmodels compose their column lists.
func ColumnList[T any](alias ...string) []string {
	var model T
	return columnsOf(reflect.TypeOf(model), alias...)
}

func columnsOf(t reflect.Type, alias ...string) []string {
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(field.Type, alias...)...)
			continue
		}
		tag, ok := field.Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		if len(alias) > 0 {
			tag = alias[0] + "." + tag
		}
		columns = append(columns, tag)
	}
	return columns
}
