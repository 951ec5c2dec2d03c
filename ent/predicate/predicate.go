// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// SalesAgent is the predicate function for salesagent builders.
type SalesAgent func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)
