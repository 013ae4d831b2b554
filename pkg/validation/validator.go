package validation

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-social/pkg/social"
	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// ErrSelfFriendship is returned when a record lists its own id as a friend
	ErrSelfFriendship = errors.New("person lists itself as a friend")
	// ErrDuplicateFriend is returned when a record lists the same friend twice
	ErrDuplicateFriend = errors.New("friend listed more than once")
	// ErrDuplicateID is returned when two records share an id
	ErrDuplicateID = errors.New("duplicate person id")
)

func init() {
	validate = validator.New()
}

// Struct validates any value against its `validate` tags.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateRecord checks a single ingested person record. Self-friendship and
// repeated friends are rejected because the graph does not guard against
// them once loaded.
func ValidateRecord(record *social.Record) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}

	if err := Struct(record); err != nil {
		return err
	}

	seen := make(map[int]bool, len(record.Friends))
	for _, friendID := range record.Friends {
		if friendID == record.ID {
			return fmt.Errorf("Friends: %w (%d)", ErrSelfFriendship, friendID)
		}
		if seen[friendID] {
			return fmt.Errorf("Friends: %w (%d)", ErrDuplicateFriend, friendID)
		}
		seen[friendID] = true
	}

	return nil
}

// ValidateRecords checks every record and rejects repeated ids.
func ValidateRecords(records []social.Record) error {
	ids := make(map[int]bool, len(records))
	for i := range records {
		if err := ValidateRecord(&records[i]); err != nil {
			return fmt.Errorf("record %d (id %d): %w", i, records[i].ID, err)
		}
		if ids[records[i].ID] {
			return fmt.Errorf("record %d: %w (%d)", i, ErrDuplicateID, records[i].ID)
		}
		ids[records[i].ID] = true
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
