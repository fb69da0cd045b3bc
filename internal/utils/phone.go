package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// mobileAreaCodes are capital-city DDDs used when generating sample numbers
var mobileAreaCodes = []string{"11", "21", "27", "31", "41", "48", "51", "61", "71", "81", "85", "91"}

// FormatBrazilianMobile parses a Brazilian mobile number and returns it in E.164
func FormatBrazilianMobile(phone string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(phone), "BR")
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumberForRegion(num, "BR") {
		return "", fmt.Errorf("invalid brazilian phone number: %s", phone)
	}

	numberType := phonenumbers.GetNumberType(num)
	if numberType != phonenumbers.MOBILE && numberType != phonenumbers.FIXED_LINE_OR_MOBILE {
		return "", fmt.Errorf("not a mobile phone number: %s", phone)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// GenerateMobilePhone returns a random valid Brazilian mobile number in E.164
func GenerateMobilePhone(rng *rand.Rand) string {
	for {
		ddd := mobileAreaCodes[rng.Intn(len(mobileAreaCodes))]
		subscriber := "9" + joinDigits(append([]int{6 + rng.Intn(4)}, randomDigits(rng, 7)...))

		formatted, err := FormatBrazilianMobile(ddd + subscriber)
		if err == nil {
			return formatted
		}
	}
}
