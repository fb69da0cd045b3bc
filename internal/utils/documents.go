package utils

import (
	"fmt"
	"math/rand"
	"regexp"
)

var nonDigit = regexp.MustCompile(`\D`)

var (
	cpfFirstWeights   = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfSecondWeights  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// validCPF checks the length and both check digits of a CPF.
// Separators are ignored; repeated-digit CPFs are rejected.
func validCPF(cpf string) bool {
	digits := toDigits(nonDigit.ReplaceAllString(cpf, ""))
	if len(digits) != 11 || allSame(digits) {
		return false
	}
	return digits[9] == checkDigit(digits[:9], cpfFirstWeights) &&
		digits[10] == checkDigit(digits[:10], cpfSecondWeights)
}

// validCNPJ checks the length and both check digits of a CNPJ
func validCNPJ(cnpj string) bool {
	digits := toDigits(nonDigit.ReplaceAllString(cnpj, ""))
	if len(digits) != 14 || allSame(digits) {
		return false
	}
	return digits[12] == checkDigit(digits[:12], cnpjFirstWeights) &&
		digits[13] == checkDigit(digits[:13], cnpjSecondWeights)
}

// GenerateCPF returns a random CPF with valid check digits, formatted XXX.XXX.XXX-XX
func GenerateCPF(rng *rand.Rand) string {
	digits := randomDigits(rng, 9)
	digits = append(digits, checkDigit(digits, cpfFirstWeights))
	digits = append(digits, checkDigit(digits, cpfSecondWeights))
	s := joinDigits(digits)
	return fmt.Sprintf("%s.%s.%s-%s", s[0:3], s[3:6], s[6:9], s[9:11])
}

// GenerateCNPJ returns a random headquarters CNPJ with valid check digits,
// formatted XX.XXX.XXX/0001-XX
func GenerateCNPJ(rng *rand.Rand) string {
	digits := append(randomDigits(rng, 8), 0, 0, 0, 1)
	digits = append(digits, checkDigit(digits, cnpjFirstWeights))
	digits = append(digits, checkDigit(digits, cnpjSecondWeights))
	s := joinDigits(digits)
	return fmt.Sprintf("%s.%s.%s/%s-%s", s[0:2], s[2:5], s[5:8], s[8:12], s[12:14])
}

func checkDigit(digits, weights []int) int {
	sum := 0
	for i, weight := range weights {
		sum += digits[i] * weight
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func toDigits(s string) []int {
	digits := make([]int, len(s))
	for i, r := range s {
		digits[i] = int(r - '0')
	}
	return digits
}

func joinDigits(digits []int) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[i] = byte('0' + d)
	}
	return string(b)
}

func randomDigits(rng *rand.Rand, n int) []int {
	digits := make([]int, n)
	for i := range digits {
		digits[i] = rng.Intn(10)
	}
	// avoid the all-same sequences rejected by the validators
	if allSame(digits) {
		digits[0] = (digits[0] + 1) % 10
	}
	return digits
}

func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
