package observability

import (
	"github.com/transfeera/receiver-api/internal/logging"
	"go.uber.org/zap"
)

// Logger returns the global logger instance
func Logger() *zap.Logger {
	return logging.Logger
}

// MaskDocument masks a CPF or CNPJ for logging, keeping only the last two digits
func MaskDocument(document string) string {
	digits := make([]rune, 0, len(document))
	for _, r := range document {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}

	switch len(digits) {
	case 11:
		return "***.***.***-" + string(digits[9:])
	case 14:
		return "**.***.***/****-" + string(digits[12:])
	default:
		return "********"
	}
}
