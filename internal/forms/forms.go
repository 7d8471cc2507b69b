// Package forms decodes and validates the HTML forms of the site. Validation
// messages are the ones shown next to the fields.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to its message.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}

	return strings.Join(parts, "; ")
}

func (e Errors) Get(field string) string { return e[field] }

var validate = newValidator() //nolint: gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	v.RegisterStructValidation(validateComment, Comment{})

	return v
}

// Validate checks f and returns its field errors, or nil when f is valid.
func Validate(f any) Errors {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"": err.Error()}
	}

	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, ok := out[fe.Field()]; ok {
			continue
		}
		out[fe.Field()] = message(fe)
	}

	return out
}

// message resolves the text for fe. Keys are "<Struct>.<Field>.<tag>", with
// "<Field>.<tag>" as a shared fallback.
func message(fe validator.FieldError) string {
	if fe.Tag() == commentTag {
		return fe.Param()
	}

	key := fe.StructNamespace() + "." + fe.Tag()
	msg, ok := messages[key]
	if !ok {
		msg, ok = messages[fe.StructField()+"."+fe.Tag()]
	}
	if !ok {
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	if strings.Contains(msg, "%") {
		s, _ := fe.Value().(string)

		return fmt.Sprintf(msg, utf8.RuneCountInString(s), fe.Param())
	}

	return msg
}

//nolint: gochecknoglobals
var messages = map[string]string{
	"FirstName.required":         "First name is required",
	"LastName.required":          "Last name is required",
	"Email.required":             "Email is required",
	"Email.email":                "Invalid email address",
	"Password.required":          "Password is required",
	"Password.min":               "Password must be at least 6 characters",
	"ConfirmPassword.required":   "Please confirm your password",
	"ConfirmPassword.eqfield":    "Passwords do not match",
	"Token.required":             "Invalid link. Token is missing.",
	"NewPassword.required":       "New password is required",
	"NewPassword.min":            "Password must be at least 6 characters",
	"CurrentPassword.required":   "Current password is required",
	"TemporaryPassword.required": "Temporary password is required",

	"ResetPassword.Token.required":           "Invalid reset link. Token is missing.",
	"ChangePassword.NewPassword.min":         "Password must be at least 6 characters long",
	"ChangePassword.ConfirmPassword.eqfield": "New passwords do not match",

	"Article.Title.required":            "Title is required",
	"Article.Title.max":                 "Title is too long (%d/%s characters)",
	"Article.Description.required":      "Description is required",
	"Article.Description.max":           "Description is too long (%d/%s characters)",
	"Article.Content.required":          "Content is required",
	"Article.CategoryID.required":       "Category is required",
	"Article.ImageURL.required_without": "Thumbnail image is required",
}

var decoder = form.NewDecoder() //nolint: gochecknoglobals

// Decode fills the struct pointed to by dst from form values, matching
// fields by their `form` tag. Values are trimmed unless the tag carries the
// "raw" option. Fields whose value does not parse are left zero and reported
// in the returned error; every other field is still filled.
func Decode(values url.Values, dst any) error {
	return decoder.Decode(dst, trimmed(values, rawFields(reflect.TypeOf(dst))))
}

func trimmed(values url.Values, raw map[string]bool) url.Values {
	out := make(url.Values, len(values))
	for name, vs := range values {
		if raw[name] {
			out[name] = vs

			continue
		}
		t := make([]string, len(vs))
		for i, v := range vs {
			t[i] = strings.TrimSpace(v)
		}
		out[name] = t
	}

	return out
}

var rawCache sync.Map //nolint: gochecknoglobals

// rawFields lists the form names of t's fields tagged with the "raw" option.
func rawFields(t reflect.Type) map[string]bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := rawCache.Load(t); ok {
		return cached.(map[string]bool) //nolint: forcetypeassert
	}

	raw := map[string]bool{}
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			name, opts, _ := strings.Cut(t.Field(i).Tag.Get("form"), ",")
			if opts == "raw" {
				raw[name] = true
			}
		}
	}
	rawCache.Store(t, raw)

	return raw
}
