package strata

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/strataframe/strata/config"
	"github.com/strataframe/strata/depend"
	"github.com/strataframe/strata/introspection"
)

var durationType = reflect.TypeOf(time.Duration(0))

type injectedComponent struct {
	introspection.Component
	accesses []introspection.ConfigAccess
}

func componentName(component any) string {
	t := reflect.TypeOf(component)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// injectFields satisfies `resolve:""` and `config:"KEY"` tags on the
// component's struct fields. Components passed by value are left
// untouched; they simply carry no injectable fields.
func injectFields(ctx context.Context, component any) (injectedComponent, error) {
	out := injectedComponent{
		Component: introspection.Component{Name: componentName(component)},
	}

	v := reflect.ValueOf(component)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return out, nil
	}
	elem := v.Elem()
	structType := elem.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldValue := elem.Field(i)

		if _, tagged := field.Tag.Lookup("resolve"); tagged {
			if !fieldValue.CanSet() {
				return out, fmt.Errorf("resolve field %s is unexported", field.Name)
			}
			dep, err := depend.ResolveType(field.Type)
			if err != nil {
				return out, fmt.Errorf("resolve field %s: %w", field.Name, err)
			}
			fieldValue.Set(reflect.ValueOf(dep))
			out.Resolved = append(out.Resolved, field.Type.String())
			continue
		}

		key, tagged := field.Tag.Lookup("config")
		if !tagged {
			continue
		}
		if !fieldValue.CanSet() {
			return out, fmt.Errorf("config field %s is unexported", field.Name)
		}

		raw, err := config.GlobalProvider().Get(ctx, key)
		usedDefault := false
		if err != nil {
			fallback, hasDefault := field.Tag.Lookup("default")
			if !hasDefault || !errors.Is(err, config.ErrKeyNotFound) {
				return out, fmt.Errorf("config field %s (key %s): %w", field.Name, key, err)
			}
			raw, usedDefault = fallback, true
		}

		if err := setFromString(fieldValue, field, raw); err != nil {
			return out, fmt.Errorf("config field %s (key %s): %w", field.Name, key, err)
		}
		out.ConfigKeys = append(out.ConfigKeys, key)
		out.accesses = append(out.accesses, introspection.ConfigAccess{
			Key:         key,
			Value:       raw,
			UsedDefault: usedDefault,
		})
	}

	return out, nil
}

func setFromString(fieldValue reflect.Value, field reflect.StructField, raw string) error {
	if field.Type == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", raw, err)
		}
		fieldValue.SetInt(int64(d))
		return nil
	}

	switch field.Type.Kind() {
	case reflect.String:
		fieldValue.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid bool %q: %w", raw, err)
		}
		fieldValue.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type.Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", raw, err)
		}
		fieldValue.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type.Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q: %w", raw, err)
		}
		fieldValue.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, field.Type.Bits())
		if err != nil {
			return fmt.Errorf("invalid float %q: %w", raw, err)
		}
		fieldValue.SetFloat(f)
	default:
		return fmt.Errorf("unsupported config field type %v", field.Type)
	}
	return nil
}
