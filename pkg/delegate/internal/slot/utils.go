package slot

import (
	"reflect"
)

// IsNil reports true for a nil interface and for interfaces holding a nil
// pointer or nil func.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func:
		return v.IsNil()
	}
	return false
}
