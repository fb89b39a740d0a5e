package bind

import (
	"database/sql"
	"database/sql/driver"
	"reflect"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
)

const tagName = "db"

var (
	scannerType = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
	valuerType  = reflect.TypeOf((*driver.Valuer)(nil)).Elem()
	timeType    = reflect.TypeOf(time.Time{})
)

// Field maps a struct field to a result column.
type Field struct {
	Name   string
	Column string
	Index  []int
	Type   reflect.Type
}

// Fields lists the column mapped fields of struct type t. Nested structs are
// flattened unless they are scanned as a whole (time.Time, sql.Scanner or
// driver.Valuer implementations).
func Fields(t reflect.Type) []Field {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return fieldsOf(t, nil)
}

func fieldsOf(t reflect.Type, parent []int) []Field {
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		if ft.PkgPath != "" {
			continue
		}
		tag := ft.Tag.Get(tagName)
		if tag == "-" {
			continue
		}
		index := append(append([]int{}, parent...), i)
		if ft.Type.Kind() == reflect.Struct && !IsScalar(ft.Type) && tag == "" {
			fields = append(fields, fieldsOf(ft.Type, index)...)
			continue
		}
		column := tag
		if column == "" {
			column = strcase.ToSnake(ft.Name)
		}
		fields = append(fields, Field{Name: ft.Name, Column: column, Index: index, Type: ft.Type})
	}
	return fields
}

// IsScalar reports whether values of t are scanned from a single column.
func IsScalar(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return true
	}
	return t == timeType || reflect.PtrTo(t).Implements(scannerType) || t.Implements(valuerType)
}

func lookup(fields []Field, column string) (Field, bool) {
	for _, f := range fields {
		if f.Column == column {
			return f, true
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.Name, column) || strings.EqualFold(f.Column, column) {
			return f, true
		}
	}
	return Field{}, false
}
