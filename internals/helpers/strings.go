// file: internals/helpers/strings.go
package helper

import (
	"reflect"
	"strings"
)

// TrimStrings trims surrounding whitespace on every exported string and
// *string field of the struct p points to, in place. Run before validation
// so a whitespace-only value fails "required" instead of persisting as "".
func TrimStrings(p any) {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch {
		case f.Kind() == reflect.String && f.CanSet():
			f.SetString(strings.TrimSpace(f.String()))
		case f.Kind() == reflect.Pointer && !f.IsNil() && f.Elem().Kind() == reflect.String && f.Elem().CanSet():
			f.Elem().SetString(strings.TrimSpace(f.Elem().String()))
		}
	}
}

// CleanOptional trims an optional request string and collapses blank values
// to nil so they persist as NULL.
func CleanOptional(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
