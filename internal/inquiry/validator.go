// Package inquiry validates and records booking requests and partnership applications.
package inquiry

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/helloasmak/vyra/internal/domain"
)

// FieldError names a rejected form field and the rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError lists every rejected field. It wraps domain.ErrInvalidInquiry.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := lo.Map(e.Fields, func(f FieldError, _ int) string { return f.Field + ":" + f.Rule })
	return fmt.Sprintf("%s: %s", domain.ErrInvalidInquiry, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInquiry
}

// Validator checks inquiry forms against the catalog's booking options.
type Validator struct {
	validate *validator.Validate
	services []string
}

// NewValidator builds a validator accepting the given service titles as booking options.
func NewValidator(serviceTitles []string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	services := append([]string(nil), serviceTitles...)
	_ = v.RegisterValidation("service_type", func(fl validator.FieldLevel) bool {
		_, ok := canonical(services, fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("partnership_type", func(fl validator.FieldLevel) bool {
		_, ok := canonical(domain.PartnershipTypes, fl.Field().String())
		return ok
	})

	return &Validator{validate: v, services: services}
}

// canonical finds value among options ignoring case, so "BESPOKE CONCIERGE"
// as shown on the form resolves to "Bespoke Concierge".
func canonical(options []string, value string) (string, bool) {
	return lo.Find(options, func(option string) bool {
		return strings.EqualFold(option, value)
	})
}

// Booking trims the request in place and validates it.
func (v *Validator) Booking(req *domain.BookingRequest) error {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.ServiceType = strings.TrimSpace(req.ServiceType)
	if title, ok := canonical(v.services, req.ServiceType); ok {
		req.ServiceType = title
	}
	req.RequestedDate = strings.TrimSpace(req.RequestedDate)
	req.Notes = strings.TrimSpace(req.Notes)
	return v.check(req)
}

// Partnership trims the application in place and validates it.
func (v *Validator) Partnership(app *domain.PartnershipApplication) error {
	app.AgencyName = strings.TrimSpace(app.AgencyName)
	app.LegalRepresentative = strings.TrimSpace(app.LegalRepresentative)
	app.BusinessEmail = strings.TrimSpace(app.BusinessEmail)
	app.PartnershipType = strings.TrimSpace(app.PartnershipType)
	if kind, ok := canonical(domain.PartnershipTypes, app.PartnershipType); ok {
		app.PartnershipType = kind
	}
	app.Portfolio = strings.TrimSpace(app.Portfolio)
	return v.check(app)
}

func (v *Validator) check(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInquiry, err)
	}
	return &ValidationError{
		Fields: lo.Map(verrs, func(fe validator.FieldError, _ int) FieldError {
			return FieldError{Field: fe.Field(), Rule: fe.Tag()}
		}),
	}
}
