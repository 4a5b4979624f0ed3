// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CatalogItem is the predicate function for catalogitem builders.
type CatalogItem func(*sql.Selector)

// ExactMapping is the predicate function for exactmapping builders.
type ExactMapping func(*sql.Selector)

// ExtractionLog is the predicate function for extractionlog builders.
type ExtractionLog func(*sql.Selector)
