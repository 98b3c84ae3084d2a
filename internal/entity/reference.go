package entity

import "fmt"

type ReferenceKind string

const (
	// ReferenceScalar is a column holding a single id; it is set to NULL.
	ReferenceScalar ReferenceKind = "scalar"
	// ReferenceArray is a text[] column of ids; the id is removed from the array.
	ReferenceArray ReferenceKind = "array"
)

// Reference describes a collection field that may hold the id of another entity.
type Reference struct {
	Collection string
	Field      string
	Kind       ReferenceKind
}

func (r Reference) Validate() error {
	if r.Collection == "" || r.Field == "" {
		return fmt.Errorf("%w: reference %s.%s is incomplete", ErrInvalidRequest, r.Collection, r.Field)
	}

	if r.Kind != ReferenceScalar && r.Kind != ReferenceArray {
		return fmt.Errorf("%w: reference %s.%s has unknown kind %q", ErrInvalidRequest, r.Collection, r.Field, r.Kind)
	}

	return nil
}

// ChildReferences lists every field holding a child id.
var ChildReferences = []Reference{
	{Collection: "users", Field: "children", Kind: ReferenceArray},
	{Collection: "classes", Field: "students", Kind: ReferenceArray},
	{Collection: "groups", Field: "children", Kind: ReferenceArray},
	{Collection: "payments", Field: "child_id", Kind: ReferenceScalar},
}
