package user

import (
	"errors"
	"fmt"
	"unicode"

	"estatehub/database"
	"estatehub/utils"

	"golang.org/x/crypto/bcrypt"
)

// VerifyPasswordComplexity checks that the password mixes letters and digits.
func VerifyPasswordComplexity(pw string) error {
	var hasLetter, hasNumber bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}
	if len(pw) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasLetter {
		return fmt.Errorf("password must include at least one letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	return nil
}

func hashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func passwordError(field string, err error) error {
	return utils.Validation("Validation failed").
		WithDetails([]utils.FieldError{{Field: field, Message: err.Error()}})
}

// mapRepoError translates repository sentinels for the user resource.
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNotFound):
		return utils.NotFound("User")
	case errors.Is(err, database.ErrDuplicate):
		return utils.Duplicate("email")
	}
	return utils.Internal(err)
}
