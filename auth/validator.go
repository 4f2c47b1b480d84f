package auth

import (
	"bot-lab/errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ConnectRequest is what a transport client declares when it connects.
type ConnectRequest struct {
	Address string `validate:"required,max=128"`
	Name    string `validate:"max=64"`
}

func ValidateConnect(req ConnectRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidAddress, err)
	}
	if !isAddressPrintable(req.Address) {
		return errors.ErrInvalidAddress
	}
	return nil
}

// isAddressPrintable rejects spaces and control characters, and an empty local part.
func isAddressPrintable(s string) bool {
	if strings.HasPrefix(s, "@") {
		return false
	}
	for _, char := range s {
		if unicode.IsSpace(char) || unicode.IsControl(char) {
			return false
		}
	}
	return true
}
