package models

import (
	"errors"
	"strings"

	"holidaze/models/venue"

	"github.com/go-playground/validator/v10"
)

const NoroffEmailDomain = "@stud.noroff.no"

var validate = validator.New()

// fieldMessages maps "<Field>.<tag>" to the message shown to the user.
var fieldMessages = map[string]string{
	"Name.required":            "Name is required",
	"Email.required":           "Email is required",
	"Email.email":              "Invalid email",
	"Email.endswith":           "Email must end with " + NoroffEmailDomain,
	"Password.required":        "Password is required",
	"Password.min":             "Password too short",
	"ConfirmPassword.required": "Confirm password is required",
	"ConfirmPassword.eqfield":  "Passwords must match",
	"Address.required":         "Address is required",
	"Description.required":     "Description is required",
	"MaxGuests.required":       "Max Guests is required",
	"MaxGuests.min":            "At least 1 guest",
	"Price.required":           "Price per night is required",
	"Price.min":                "Price must be positive",
	"Media.http_url":           "Invalid URL",
	"AvatarURL.http_url":       "Invalid URL",
}

// RegisterForm is the sign-up form.
type RegisterForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email,endswith=@stud.noroff.no"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	VenueManager    bool   `json:"venueManager"`
}

// LoginForm is the log-in form.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email,endswith=@stud.noroff.no"`
	Password string `json:"password" validate:"required"`
}

// VenueForm is shared by the create and update venue screens.
type VenueForm struct {
	Name        string     `json:"name" validate:"required"`
	Address     string     `json:"address" validate:"required"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Description string     `json:"description" validate:"required"`
	MaxGuests   int        `json:"maxGuests" validate:"required,min=1"`
	Price       float64    `json:"price" validate:"required,min=1"`
	Media       []string   `json:"media" validate:"dive,http_url"`
	Meta        venue.Meta `json:"meta"`
}

// ProfileForm edits bio and avatar of the logged-in profile.
type ProfileForm struct {
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,http_url"`
}

func (f RegisterForm) Validate() error { return validateStruct(f) }
func (f LoginForm) Validate() error    { return validateStruct(f) }
func (f ProfileForm) Validate() error  { return validateStruct(f) }

// Validate normalises the media list before checking the form.
func (f *VenueForm) Validate() error {
	f.Media = NormalizeMediaURLs(f.Media)
	return validateStruct(f)
}

// ToInput converts a validated form into the API request body.
func (f *VenueForm) ToInput() venue.Input {
	media := make([]venue.Media, 0, len(f.Media))
	for _, u := range f.Media {
		media = append(media, venue.Media{URL: u, Alt: "Venue Image"})
	}
	return venue.Input{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Media:       media,
		Price:       f.Price,
		MaxGuests:   f.MaxGuests,
		Meta:        f.Meta,
		Location: venue.InputLocation{
			Address: strings.TrimSpace(f.Address),
			City:    strings.TrimSpace(f.City),
			Country: strings.TrimSpace(f.Country),
		},
	}
}

// NormalizeMediaURLs trims, drops empties and de-duplicates urls, keeping first-seen order.
func NormalizeMediaURLs(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := fe.StructField()
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	msg, ok := fieldMessages[field+"."+fe.Tag()]
	if !ok {
		msg = field + " is invalid"
	}
	return NewValidationError(fe.Field(), msg)
}
