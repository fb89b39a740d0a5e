package bind

import (
	"database/sql"
	"errors"
	"reflect"
)

var ErrNotPointer = errors.New("bind: target should be a non-nil pointer")

// Rows binds rows to v. v should be a pointer to a struct or a scalar, which
// receives the first row, or a pointer to a slice, which receives every row.
// Columns without a matching field are dropped.
func Rows(rows *sql.Rows, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrNotPointer
	}
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	target := rv.Elem()
	if target.Kind() == reflect.Slice && target.Type().Elem().Kind() != reflect.Uint8 {
		elemType := target.Type().Elem()
		base := elemType
		for base.Kind() == reflect.Ptr {
			base = base.Elem()
		}
		out := reflect.MakeSlice(target.Type(), 0, 0)
		for rows.Next() {
			item := reflect.New(base)
			if err := rows.Scan(scanTargets(item.Elem(), columns)...); err != nil {
				return err
			}
			if elemType.Kind() == reflect.Ptr {
				out = reflect.Append(out, item)
			} else {
				out = reflect.Append(out, item.Elem())
			}
		}
		if err := rows.Err(); err != nil {
			return err
		}
		target.Set(out)
		return nil
	}

	if !rows.Next() {
		return rows.Err()
	}
	// A nil pointer target stays nil unless a row arrives.
	if target.Kind() == reflect.Ptr && !IsScalar(target.Type().Elem()) {
		item := reflect.New(target.Type().Elem())
		if err := rows.Scan(scanTargets(item.Elem(), columns)...); err != nil {
			return err
		}
		target.Set(item)
		return rows.Err()
	}
	if err := rows.Scan(scanTargets(target, columns)...); err != nil {
		return err
	}
	return rows.Err()
}

// scanTargets returns one scan destination per column pointing into v, which
// must be addressable.
func scanTargets(v reflect.Value, columns []string) []any {
	targets := make([]any, len(columns))
	if IsScalar(v.Type()) {
		for i := range targets {
			targets[i] = new(any)
		}
		if len(targets) > 0 {
			targets[0] = v.Addr().Interface()
		}
		return targets
	}
	fields := Fields(v.Type())
	for i, column := range columns {
		f, ok := lookup(fields, column)
		if !ok {
			targets[i] = new(any)
			continue
		}
		targets[i] = v.FieldByIndex(f.Index).Addr().Interface()
	}
	return targets
}
