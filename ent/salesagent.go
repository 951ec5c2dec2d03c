// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avillega/leadtrail/ent/salesagent"
)

// SalesAgent is the model entity for the SalesAgent schema.
type SalesAgent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Agent full name
	Name string `json:"name,omitempty"`
	// Agent email address
	Email string `json:"email,omitempty"`
	// Agent phone number, stored in E.164 format
	Phone string `json:"phone,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SalesAgentQuery when eager-loading is set.
	Edges        SalesAgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SalesAgentEdges holds the relations/edges for other nodes in the graph.
type SalesAgentEdges struct {
	// Leads assigned to this agent
	Leads []*Lead `json:"leads,omitempty"`
	// Comments written by this agent
	Comments []*Comment `json:"comments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e SalesAgentEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[0] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// CommentsOrErr returns the Comments value or an error if the edge
// was not loaded in eager-loading.
func (e SalesAgentEdges) CommentsOrErr() ([]*Comment, error) {
	if e.loadedTypes[1] {
		return e.Comments, nil
	}
	return nil, &NotLoadedError{edge: "comments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SalesAgent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case salesagent.FieldID:
			values[i] = new(sql.NullInt64)
		case salesagent.FieldName, salesagent.FieldEmail, salesagent.FieldPhone:
			values[i] = new(sql.NullString)
		case salesagent.FieldCreatedAt, salesagent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SalesAgent fields.
func (_m *SalesAgent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case salesagent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case salesagent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case salesagent.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case salesagent.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case salesagent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case salesagent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SalesAgent.
// This includes values selected through modifiers, order, etc.
func (_m *SalesAgent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLeads queries the "leads" edge of the SalesAgent entity.
func (_m *SalesAgent) QueryLeads() *LeadQuery {
	return NewSalesAgentClient(_m.config).QueryLeads(_m)
}

// QueryComments queries the "comments" edge of the SalesAgent entity.
func (_m *SalesAgent) QueryComments() *CommentQuery {
	return NewSalesAgentClient(_m.config).QueryComments(_m)
}

// Update returns a builder for updating this SalesAgent.
// Note that you need to call SalesAgent.Unwrap() before calling this method if this SalesAgent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SalesAgent) Update() *SalesAgentUpdateOne {
	return NewSalesAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SalesAgent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SalesAgent) Unwrap() *SalesAgent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SalesAgent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SalesAgent) String() string {
	var builder strings.Builder
	builder.WriteString("SalesAgent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SalesAgents is a parsable slice of SalesAgent.
type SalesAgents []*SalesAgent
