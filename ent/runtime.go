// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportlike"
	"BalaghAPI/ent/reportview"
	"BalaghAPI/ent/schema"
	"BalaghAPI/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	reportMixin := schema.Report{}.Mixin()
	reportMixinFields0 := reportMixin[0].Fields()
	_ = reportMixinFields0
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportMixinFields0[0].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportMixinFields0[1].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportDescTitle is the schema descriptor for title field.
	reportDescTitle := reportFields[1].Descriptor()
	// report.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	report.TitleValidator = func() func(string) error {
		validators := reportDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescDescription is the schema descriptor for description field.
	reportDescDescription := reportFields[2].Descriptor()
	// report.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	report.DescriptionValidator = reportDescDescription.Validators[0].(func(string) error)
	// reportDescLocation is the schema descriptor for location field.
	reportDescLocation := reportFields[4].Descriptor()
	// report.DefaultLocation holds the default value on creation for the location field.
	report.DefaultLocation = reportDescLocation.Default.(string)
	// reportDescIsAnonymous is the schema descriptor for is_anonymous field.
	reportDescIsAnonymous := reportFields[9].Descriptor()
	// report.DefaultIsAnonymous holds the default value on creation for the is_anonymous field.
	report.DefaultIsAnonymous = reportDescIsAnonymous.Default.(bool)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	reportlikeMixin := schema.ReportLike{}.Mixin()
	reportlikeMixinFields0 := reportlikeMixin[0].Fields()
	_ = reportlikeMixinFields0
	reportlikeFields := schema.ReportLike{}.Fields()
	_ = reportlikeFields
	// reportlikeDescCreatedAt is the schema descriptor for created_at field.
	reportlikeDescCreatedAt := reportlikeMixinFields0[0].Descriptor()
	// reportlike.DefaultCreatedAt holds the default value on creation for the created_at field.
	reportlike.DefaultCreatedAt = reportlikeDescCreatedAt.Default.(func() time.Time)
	reportviewMixin := schema.ReportView{}.Mixin()
	reportviewMixinFields0 := reportviewMixin[0].Fields()
	_ = reportviewMixinFields0
	reportviewFields := schema.ReportView{}.Fields()
	_ = reportviewFields
	// reportviewDescCreatedAt is the schema descriptor for created_at field.
	reportviewDescCreatedAt := reportviewMixinFields0[0].Descriptor()
	// reportview.DefaultCreatedAt holds the default value on creation for the created_at field.
	reportview.DefaultCreatedAt = reportviewDescCreatedAt.Default.(func() time.Time)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.DefaultPasswordHash holds the default value on creation for the password_hash field.
	user.DefaultPasswordHash = userDescPasswordHash.Default.(string)
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[3].Descriptor()
	// user.DefaultUsername holds the default value on creation for the username field.
	user.DefaultUsername = userDescUsername.Default.(string)
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[4].Descriptor()
	// user.DefaultDisplayName holds the default value on creation for the display_name field.
	user.DefaultDisplayName = userDescDisplayName.Default.(string)
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
