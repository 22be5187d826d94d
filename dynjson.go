// Package dynjson wraps JSON in a dynamically-typed Value that can be
// navigated and coerced without error handling at every step. A Value is
// immutable and carries exactly one kind tag derived at construction;
// lookups on the wrong kind, missing keys and out-of-range indexes all
// degrade to a null value, so deep chains like
//
//	dynjson.Parse(data).Get("user").Get("friends").Index(2).Get("name")
//
// never fail loudly. Coercion accessors return an explicit ok flag
// instead of raising, and string payloads coerce leniently: text that is
// not a number resolves to decimal zero rather than to absent.
//
// A companion Representable contract converts plain objects into the
// same dictionary shape, omitting fields that have no JSON
// representation, and renders the result as compact or pretty text.
package dynjson
