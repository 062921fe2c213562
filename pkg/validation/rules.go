package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/model"
)

// Fixed error messages, one per field. They are never interpolated.
const (
	MessageName       = "Name must be at least 3 characters."
	MessageEmail      = "Email must be valid."
	MessageAgreeTerms = "You must agree to the terms."
	MessageGender     = "You must select a gender."
)

// EmailTag is the validator tag bound to model.EmailPattern. The built-in
// "email" tag accepts quoted local parts, which the form rejects.
const EmailTag = "signup_email"

// record mirrors form.FieldSet with the rules attached. min counts runes.
// The tag parameters follow model.NameMinLength and the gender options.
type record struct {
	Name       string `json:"name" validate:"min=3"`
	Email      string `json:"email" validate:"signup_email"`
	AgreeTerms bool   `json:"agreeTerms" validate:"eq=true"`
	Gender     string `json:"gender" validate:"oneof=male female"`
}

// Rule ties a field to its fixed message and the validator tag that checks it.
type Rule struct {
	Field   model.FieldName
	Message string
	Tag     string
}

var rules = []Rule{
	{Field: model.FieldNameName, Message: MessageName, Tag: "min"},
	{Field: model.FieldNameEmail, Message: MessageEmail, Tag: EmailTag},
	{Field: model.FieldNameAgree, Message: MessageAgreeTerms, Tag: "eq"},
	{Field: model.FieldNameGender, Message: MessageGender, Tag: "oneof"},
}

var emailRX = regexp.MustCompile(model.EmailPattern)

var engine = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation(EmailTag, func(fl validator.FieldLevel) bool {
		return emailRX.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
})

// Rules returns the rule table in canonical field order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// RuleFor returns the rule attached to field.
func RuleFor(field model.FieldName) (Rule, bool) {
	for _, rule := range rules {
		if rule.Field == field {
			return rule, true
		}
	}
	return Rule{}, false
}

// failedFields runs the validator over values and returns the failing fields
// keyed by their form name.
func failedFields(values form.FieldSet) map[model.FieldName]bool {
	err := engine().Struct(record{
		Name:       values.Name,
		Email:      values.Email,
		AgreeTerms: values.AgreeTerms,
		Gender:     values.Gender,
	})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// record is always a non-nil struct.
		panic(err)
	}
	out := make(map[model.FieldName]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[model.FieldName(fe.Field())] = true
	}
	return out
}
