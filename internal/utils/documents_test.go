package utils

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"valid without formatting", "12345678909", true},
		{"valid with formatting", "123.456.789-09", true},
		{"valid real example", "52998224725", true},
		{"wrong check digit", "12345678900", false},
		{"all ones", "11111111111", false},
		{"too short", "123456789", false},
		{"too long", "123456789012", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validCPF(tt.cpf))
		})
	}
}

func TestValidCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"valid without formatting", "11222333000181", true},
		{"valid with formatting", "11.222.333/0001-81", true},
		{"wrong check digit", "11222333000182", false},
		{"all same", "11111111111111", false},
		{"too short", "1122233300018", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validCNPJ(tt.cnpj))
		})
	}
}

func TestGenerateDocuments(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		cpf := GenerateCPF(rng)
		assert.True(t, validCPF(cpf), "generated CPF %s should be valid", cpf)
		assert.True(t, CPFPattern.MatchString(cpf), "generated CPF %s should match the pattern", cpf)

		cnpj := GenerateCNPJ(rng)
		assert.True(t, validCNPJ(cnpj), "generated CNPJ %s should be valid", cnpj)
		assert.True(t, CNPJPattern.MatchString(cnpj), "generated CNPJ %s should match the pattern", cnpj)
	}
}
