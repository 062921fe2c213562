// Package validation evaluates the signup rules. Each field has exactly one
// predicate and one fixed message:
//
//	name        at least 3 characters     "Name must be at least 3 characters."
//	email       local@domain.tld shape    "Email must be valid."
//	agreeTerms  must be true              "You must agree to the terms."
//	gender      male or female            "You must select a gender."
//
// Validate is pure: the same record always yields the same Result, and no
// rule looks at another field.
package validation
