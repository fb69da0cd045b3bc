package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/transfeera/receiver-api/internal/models"
)

func TestValidatePixKey(t *testing.T) {
	tests := []struct {
		name    string
		keyType models.PixKeyType
		key     string
		valid   bool
		label   string
	}{
		// CPF
		{"CPF formatted", models.PixKeyTypeCPF, "111.111.111-11", true, "CPF"},
		{"CPF digits only", models.PixKeyTypeCPF, "98765432109", true, "CPF"},
		{"CPF too short", models.PixKeyTypeCPF, "2222222222", false, "CPF"},
		{"CPF with letter", models.PixKeyTypeCPF, "33333333333s", false, "CPF"},

		// CNPJ
		{"CNPJ partially formatted", models.PixKeyTypeCNPJ, "11.111111/0001-11", true, "CNPJ"},
		{"CNPJ digits only", models.PixKeyTypeCNPJ, "11111111000111", true, "CNPJ"},
		{"CNPJ fully formatted", models.PixKeyTypeCNPJ, "53.803.780/0001-74", true, "CNPJ"},
		{"CNPJ too long", models.PixKeyTypeCNPJ, "111111110001112", false, "CNPJ"},
		{"CNPJ with letter", models.PixKeyTypeCNPJ, "22222222000222a", false, "CNPJ"},

		// EMAIL
		{"Email lowercase", models.PixKeyTypeEmail, "jhon_doe@example.com", true, "Email"},
		{"Email with plus", models.PixKeyTypeEmail, "a+b@c.com", true, "Email"},
		{"Email uppercase", models.PixKeyTypeEmail, "JHON_DOE@EXAMPLE.COM", false, "Email"},
		{"Email without at", models.PixKeyTypeEmail, "jhon.example.com", false, "Email"},

		// TELEFONE
		{"Phone with +55", models.PixKeyTypePhone, "+5511999886854", true, "phone number"},
		{"Phone with 55", models.PixKeyTypePhone, "5511999886854", true, "phone number"},
		{"Phone without country code", models.PixKeyTypePhone, "11999886854", true, "phone number"},
		{"Phone landline", models.PixKeyTypePhone, "1133224455", false, "phone number"},
		{"Phone area code starting with 0", models.PixKeyTypePhone, "01999886854", false, "phone number"},
		{"Phone formatted", models.PixKeyTypePhone, "(11) 99988-6854", false, "phone number"},

		// CHAVE_ALEATORIA
		{"UUID lowercase", models.PixKeyTypeRandomKey, "3f2504e0-4f89-41d3-9a0c-0305e82c3301", true, "aleatory key"},
		{"UUID uppercase", models.PixKeyTypeRandomKey, "3F2504E0-4F89-41D3-9A0C-0305E82C3301", true, "aleatory key"},
		{"UUID without dashes", models.PixKeyTypeRandomKey, "3f2504e04f8941d39a0c0305e82c3301", false, "aleatory key"},
		{"UUID with non hex", models.PixKeyTypeRandomKey, "3f2504e0-4f89-41d3-9a0c-0305e82c330z", false, "aleatory key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidatePixKey(tt.keyType, tt.key)
			assert.Equal(t, tt.valid, valid)
			if tt.valid {
				assert.Empty(t, msg)
				return
			}
			assert.Contains(t, msg, "pix_key: Invalid PIX Key as "+tt.label)
		})
	}
}

func TestValidatePixKey_UnknownType(t *testing.T) {
	keys := []string{"", "111.111.111-11", "a@b.com", "+5511999886854", "3f2504e0-4f89-41d3-9a0c-0305e82c3301"}

	for _, keyType := range []models.PixKeyType{"", "cpf", "PHONE", "RANDOM"} {
		for _, key := range keys {
			valid, msg := ValidatePixKey(keyType, key)
			assert.False(t, valid, "type %q key %q", keyType, key)
			assert.Contains(t, msg, "pix_key: Invalid PIX Key by type")
		}
	}
}

func TestPixKeyMessage(t *testing.T) {
	assert.Equal(t, "pix_key: Invalid PIX Key as CPF. Format: XXX.XXX.XXX-XX",
		PixKeyMessage("pix_key", models.PixKeyTypeCPF))

	fallback := PixKeyMessage("pix_key", "OTHER")
	for _, name := range models.PixKeyTypeNames() {
		assert.True(t, strings.Contains(fallback, name), "fallback should list %s", name)
	}
}

func TestIsCPFOrCNPJ(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"719.805.580-00", true},
		{"71980558000", true},
		{"53.803.780/0001-74", true},
		{"53803780000174", true},
		{"7198055800", false},
		{"538037800001745", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCPFOrCNPJ(tt.value))
		})
	}
}

func TestEmailPatternsAreCaseSpecific(t *testing.T) {
	assert.True(t, UppercaseEmailPattern.MatchString("JHON_DOE@EXAMPLE.COM"))
	assert.False(t, UppercaseEmailPattern.MatchString("jhon_doe@example.com"))
	assert.True(t, LowercaseEmailPattern.MatchString("jhon_doe@example.com"))
	assert.False(t, LowercaseEmailPattern.MatchString("JHON_DOE@EXAMPLE.COM"))
}
