// Package dsl defines record types for condwarn.
//
// Two definition styles are supported. The builder style mirrors how a record
// type is written out field by field:
//
//	jobType := dsl.Record("Job").
//		Field("name", dsl.Field()).
//		Field("retries", dsl.Field().Default(0).Condition("distributed").ErrorOnInvoke()).
//		MustBuild()
//
// The reflective style reads conditions from struct tags:
//
//	type Job struct {
//		Name    string
//		Retries int `condwarn:"condition=distributed,error"`
//	}
//	jobType := dsl.MustBindType[Job](nil)
//
// Both run the registration hook exactly once per type: each field's warning
// is armed with the field's declared name and registered under its condition.
package dsl
