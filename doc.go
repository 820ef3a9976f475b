package condwarn

// Package condwarn provides:
//
// - Deferred conditional warnings for record (struct) fields: a field declares
//   it is only meaningful under a named external condition, and supplying it
//   while the condition is unmet warns (or errors) at an explicit later
//   Invoke point instead of at construction time
// - A stable error model via Issues (field, condition, code, message)
// - An injectable Registry plus a process-wide default, with Satisfy/Invoke/
//   InvokeAll entry points and a JSON diagnostic snapshot
//
// Design policy:
// - Keep only public APIs in the root package; record-type definition lives
//   under dsl/, message text under i18n/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	jobType := dsl.Record("Job").
//		Field("retries", dsl.Field().Default(0).Condition("distributed").ErrorOnInvoke()).
//		MustBuild()
//
//	// later, once the environment is known:
//	condwarn.Satisfy("distributed") // or leave unsatisfied
//	if err := condwarn.InvokeAll(); err != nil { ... }
