package dsl

import (
	"reflect"
	"strings"

	condwarn "github.com/reoring/condwarn"
)

// BindType builds and registers a record type from struct T's exported fields
// (free function for Go version compatibility). Field names resolve through
// the condwarn/json tags (see condwarn.ResolveStructKey); conditions are
// declared in the condwarn tag:
//
//	type Job struct {
//		Retries int    `json:"retries" condwarn:"condition=distributed,error"`
//		Device  string `condwarn:"condition=gpu"`
//	}
//
// Supported tag options: name=KEY, condition=NAME, error, and "-" to skip the
// field. BindType runs the registration hook once; call it once per type.
// A nil reg targets the process-wide default registry.
func BindType[T any](reg *condwarn.Registry) (*condwarn.RecordType, error) {
	var t T
	rt := reflect.TypeOf(t)
	if rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, condwarn.Issues{condwarn.Issue{
			Code:    condwarn.CodeConfig,
			Message: "BindType[T] requires struct T",
		}}
	}

	fields := make([]condwarn.FieldSpec, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := condwarn.ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		fs := condwarn.FieldSpec{Name: name, Init: true, Repr: true, Compare: true}
		if cond, errMode, ok := parseWarnTag(sf); ok {
			fs.Warning = condwarn.NewWarning(cond, nil, errMode)
		}
		fields = append(fields, fs)
	}

	typ, err := condwarn.NewRecordType(rt.Name(), fields)
	if err != nil {
		return nil, err
	}
	if err := condwarn.RegisterDeferredWarnings(typ, reg); err != nil {
		return nil, err
	}
	return typ, nil
}

// MustBindType is like BindType but panics on error.
func MustBindType[T any](reg *condwarn.Registry) *condwarn.RecordType {
	typ, err := BindType[T](reg)
	if err != nil {
		panic(err)
	}
	return typ
}

// parseWarnTag extracts condition declarations from the condwarn struct tag.
func parseWarnTag(sf reflect.StructField) (condition string, errMode bool, ok bool) {
	ct := sf.Tag.Get("condwarn")
	if ct == "" {
		return "", false, false
	}
	for _, p := range strings.Split(ct, ",") {
		p = strings.TrimSpace(p)
		switch {
		case strings.HasPrefix(p, "condition="):
			condition = strings.TrimPrefix(p, "condition=")
		case p == "error":
			errMode = true
		}
	}
	return condition, errMode, condition != ""
}
