package sqlbuilder

import (
	"reflect"

	"github.com/gertd/go-pluralize"
	"github.com/golobby/sqlbuilder/bind"
	"github.com/iancoleman/strcase"
)

// TableName derives a table name from the type of record: OrderLine becomes
// order_lines.
func TableName(record any) (string, error) {
	t, err := structType(record)
	if err != nil {
		return "", err
	}
	return pluralize.NewClient().Plural(strcase.ToSnake(t.Name())), nil
}

// Columns lists the columns mapped from the exported fields of record. A db
// tag overrides the snake cased field name, db:"-" skips the field.
func Columns(record any) ([]string, error) {
	t, err := structType(record)
	if err != nil {
		return nil, err
	}
	var columns []string
	for _, f := range bind.Fields(t) {
		columns = append(columns, f.Column)
	}
	if err := atLeastOneElement("columns", len(columns)); err != nil {
		return nil, err
	}
	return columns, nil
}

func structType(record any) (reflect.Type, error) {
	if record == nil {
		return nil, &ArgumentError{Argument: "record", Reason: "should not be nil"}
	}
	t := reflect.TypeOf(record)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return nil, &ArgumentError{Argument: "record", Reason: "should be a named struct, got " + t.String()}
	}
	return t, nil
}
