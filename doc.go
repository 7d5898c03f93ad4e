package sift

// Package sift validates nested key/value data against a declared schema
// and produces a sanitized, allow-listed copy in one pass.
//
// - Schemas are ordered lists of Property values built with Prop.
// - Validators form a closed set (Bool/Int/String/Object/Array/Or/...)
//   plus Custom for caller-defined checks and transforms.
// - Process returns the sanitized map or a single *Error carrying the
//   path of the first failing field and a symbolic code.
//
// Design policy:
// - Keep the schema model and the engine in the root package; wire
//   decoding lives under source/, declarative schema files under
//   schemadef/, struct binding under bind/, and the CLI under cmd/sift.
// - The engine never parses bytes and never coerces values: accepted
//   input is stored verbatim unless a Custom validator replaces it.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := sift.Schema{
//		sift.Prop("id", sift.Required(), sift.String()),
//		sift.Prop("retries", sift.Default(3), sift.IntRange(0, 10)),
//	}
//	out, err := sift.Process(input, schema)
