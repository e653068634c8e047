package validation

import (
	"context"
	"regexp"
	"unicode/utf8"
)

// HotelInput is the submitted form payload for creating or updating a hotel
type HotelInput struct {
	HotelName     string `json:"hotel_name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
}

// Errors maps a field name to a human-readable message for its first
// violated rule. An empty map means the input is valid.
type Errors map[string]string

// NameChecker reports whether a hotel name is already taken by a tenant
// other than excludeID.
type NameChecker func(ctx context.Context, name string, excludeID uint) (bool, error)

var contactNumberPattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// rule pairs a predicate with the message reported when it fails
type rule struct {
	ok      func(string) bool
	message string
}

func required(v string) bool {
	return v != ""
}

func maxLen(n int) func(string) bool {
	return func(v string) bool {
		return utf8.RuneCountInString(v) <= n
	}
}

func pattern(re *regexp.Regexp) func(string) bool {
	return func(v string) bool {
		return re.MatchString(v)
	}
}

// fieldRules binds a form field to its ordered rule list
type fieldRules struct {
	field string
	value func(HotelInput) string
	rules []rule
}

var hotelRules = []fieldRules{
	{
		field: "hotel_name",
		value: func(in HotelInput) string { return in.HotelName },
		rules: []rule{
			{required, "The hotel name field is required."},
			{maxLen(255), "The hotel name must not be greater than 255 characters."},
		},
	},
	{
		field: "address",
		value: func(in HotelInput) string { return in.Address },
		rules: []rule{
			{required, "The address field is required."},
			{maxLen(500), "The address must not be greater than 500 characters."},
		},
	},
	{
		field: "contact_number",
		value: func(in HotelInput) string { return in.ContactNumber },
		rules: []rule{
			{required, "The contact number field is required."},
			{maxLen(20), "The contact number must not be greater than 20 characters."},
			{pattern(contactNumberPattern), "The contact number format is invalid."},
		},
	},
}

// ValidateHotel evaluates every field against its rule list. All fields are
// checked so the form can show every field error at once; within a field the
// first violated rule wins. Name uniqueness runs through nameTaken (which may
// be nil to skip it) with excludeID keeping the record under edit out of the
// check. The returned error is a store failure, not a validation outcome.
func ValidateHotel(ctx context.Context, in HotelInput, excludeID uint, nameTaken NameChecker) (Errors, error) {
	errs := Errors{}

	for _, f := range hotelRules {
		v := f.value(in)
		for _, r := range f.rules {
			if !r.ok(v) {
				errs[f.field] = r.message
				break
			}
		}
	}

	// Uniqueness only makes sense for a name that passed its static rules
	if _, bad := errs["hotel_name"]; !bad && nameTaken != nil {
		taken, err := nameTaken(ctx, in.HotelName, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs["hotel_name"] = "The hotel name has already been taken."
		}
	}

	return errs, nil
}
