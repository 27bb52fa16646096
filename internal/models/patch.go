package models

import "github.com/oapi-codegen/nullable"

// applyNullable copies a patch field onto dst when the request carried it.
// An explicit null clears dst.
func applyNullable[T any](dst **T, field nullable.Nullable[T]) {
	if !field.IsSpecified() {
		return
	}
	if field.IsNull() {
		*dst = nil
		return
	}
	value := field.MustGet()
	*dst = &value
}
