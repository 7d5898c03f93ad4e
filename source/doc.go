// Package source decodes JSON and YAML documents into the generic
// string-keyed form sift.Process consumes.
//
// The engine itself never touches bytes; this package is the external
// collaborator that does. JSON decoding keeps numbers as json.Number
// so integer values survive undamaged, and YAML decoding normalizes
// mappings to string keys recursively.
package source
