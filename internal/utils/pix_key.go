package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/transfeera/receiver-api/internal/models"
)

var (
	// CPFPattern matches an 11 digit CPF with optional separators
	CPFPattern = regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`)

	// CNPJPattern matches a 14 digit CNPJ with optional separators
	CNPJPattern = regexp.MustCompile(`^\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}$`)

	// LowercaseEmailPattern is the email shape accepted as a PIX key
	LowercaseEmailPattern = regexp.MustCompile(`^[a-z0-9+_.-]+@[a-z0-9.-]+$`)

	// UppercaseEmailPattern is the email shape accepted for the receiver email
	UppercaseEmailPattern = regexp.MustCompile(`^[A-Z0-9+_.-]+@[A-Z0-9.-]+$`)

	// PhonePattern matches a Brazilian mobile number with optional +55 prefix
	PhonePattern = regexp.MustCompile(`^(\+?55)?([1-9][0-9])(9\d{8})$`)

	// UUIDPattern matches the textual UUID shape, case-insensitive
	UUIDPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

type pixKeyRule struct {
	pattern *regexp.Regexp
	label   string
	format  string
}

var pixKeyRules = map[models.PixKeyType]pixKeyRule{
	models.PixKeyTypeCPF:       {CPFPattern, "CPF", "XXX.XXX.XXX-XX"},
	models.PixKeyTypeCNPJ:      {CNPJPattern, "CNPJ", "XX.XXX.XXX/XXXX-XX"},
	models.PixKeyTypeEmail:     {LowercaseEmailPattern, "Email", "'a@b.com'"},
	models.PixKeyTypePhone:     {PhonePattern, "phone number", "'+5511999886854' or '11999886854'"},
	models.PixKeyTypeRandomKey: {UUIDPattern, "aleatory key", "'XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX'"},
}

// IsCPFOrCNPJ reports whether the value has the shape of a CPF or a CNPJ
func IsCPFOrCNPJ(value string) bool {
	return CNPJPattern.MatchString(value) || CPFPattern.MatchString(value)
}

// ValidatePixKey checks a PIX key against the pattern of its type.
// It returns false and a message naming the violated type when the key is invalid;
// an unknown key type is always invalid.
func ValidatePixKey(keyType models.PixKeyType, key string) (bool, string) {
	rule, ok := pixKeyRules[keyType]
	if !ok {
		return false, PixKeyMessage("pix_key", keyType)
	}
	if !rule.pattern.MatchString(key) {
		return false, PixKeyMessage("pix_key", keyType)
	}
	return true, ""
}

// PixKeyMessage builds the validation message for an invalid key of the given type
func PixKeyMessage(field string, keyType models.PixKeyType) string {
	rule, ok := pixKeyRules[keyType]
	if !ok {
		return fmt.Sprintf("%s: Invalid PIX Key by type. Any of: %s",
			field, strings.Join(models.PixKeyTypeNames(), ", "))
	}
	return fmt.Sprintf("%s: Invalid PIX Key as %s. Format: %s", field, rule.label, rule.format)
}
