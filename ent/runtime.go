// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avillega/leadtrail/ent/comment"
	"github.com/avillega/leadtrail/ent/lead"
	"github.com/avillega/leadtrail/ent/salesagent"
	"github.com/avillega/leadtrail/ent/schema"
	"github.com/avillega/leadtrail/ent/tag"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescLeadID is the schema descriptor for lead_id field.
	commentDescLeadID := commentFields[0].Descriptor()
	// comment.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	comment.LeadIDValidator = commentDescLeadID.Validators[0].(func(int) error)
	// commentDescAuthorID is the schema descriptor for author_id field.
	commentDescAuthorID := commentFields[1].Descriptor()
	// comment.AuthorIDValidator is a validator for the "author_id" field. It is called by the builders before save.
	comment.AuthorIDValidator = commentDescAuthorID.Validators[0].(func(int) error)
	// commentDescCommentText is the schema descriptor for comment_text field.
	commentDescCommentText := commentFields[2].Descriptor()
	// comment.CommentTextValidator is a validator for the "comment_text" field. It is called by the builders before save.
	comment.CommentTextValidator = func() func(string) error {
		validators := commentDescCommentText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(comment_text string) error {
			for _, fn := range fns {
				if err := fn(comment_text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentFields[3].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[0].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescSalesAgentID is the schema descriptor for sales_agent_id field.
	leadDescSalesAgentID := leadFields[2].Descriptor()
	// lead.SalesAgentIDValidator is a validator for the "sales_agent_id" field. It is called by the builders before save.
	lead.SalesAgentIDValidator = leadDescSalesAgentID.Validators[0].(func(int) error)
	// leadDescTimeToClose is the schema descriptor for time_to_close field.
	leadDescTimeToClose := leadFields[5].Descriptor()
	// lead.TimeToCloseValidator is a validator for the "time_to_close" field. It is called by the builders before save.
	lead.TimeToCloseValidator = leadDescTimeToClose.Validators[0].(func(int) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[8].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[9].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	salesagentFields := schema.SalesAgent{}.Fields()
	_ = salesagentFields
	// salesagentDescName is the schema descriptor for name field.
	salesagentDescName := salesagentFields[0].Descriptor()
	// salesagent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	salesagent.NameValidator = salesagentDescName.Validators[0].(func(string) error)
	// salesagentDescEmail is the schema descriptor for email field.
	salesagentDescEmail := salesagentFields[1].Descriptor()
	// salesagent.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	salesagent.EmailValidator = salesagentDescEmail.Validators[0].(func(string) error)
	// salesagentDescCreatedAt is the schema descriptor for created_at field.
	salesagentDescCreatedAt := salesagentFields[3].Descriptor()
	// salesagent.DefaultCreatedAt holds the default value on creation for the created_at field.
	salesagent.DefaultCreatedAt = salesagentDescCreatedAt.Default.(func() time.Time)
	// salesagentDescUpdatedAt is the schema descriptor for updated_at field.
	salesagentDescUpdatedAt := salesagentFields[4].Descriptor()
	// salesagent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	salesagent.DefaultUpdatedAt = salesagentDescUpdatedAt.Default.(func() time.Time)
	// salesagent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	salesagent.UpdateDefaultUpdatedAt = salesagentDescUpdatedAt.UpdateDefault.(func() time.Time)
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[0].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = tagDescName.Validators[0].(func(string) error)
	// tagDescCreatedAt is the schema descriptor for created_at field.
	tagDescCreatedAt := tagFields[1].Descriptor()
	// tag.DefaultCreatedAt holds the default value on creation for the created_at field.
	tag.DefaultCreatedAt = tagDescCreatedAt.Default.(func() time.Time)
}
