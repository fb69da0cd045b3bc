package testutil

import (
	"fmt"
	"time"

	"github.com/transfeera/receiver-api/internal/models"
)

// SeedReceivers stores n receivers with ids 1..n. Every third receiver is
// validated and the PIX key types rotate through every known type.
func SeedReceivers(repo *MemoryReceiverRepository, n int) []models.Receiver {
	keys := map[models.PixKeyType]string{
		models.PixKeyTypeCPF:       "719.805.580-00",
		models.PixKeyTypeCNPJ:      "53.803.780/0001-74",
		models.PixKeyTypeEmail:     "john@example.com",
		models.PixKeyTypePhone:     "+5511987654321",
		models.PixKeyTypeRandomKey: "0c5c4a5b-6f0e-4f4b-9a8e-2b5f3d1c7e90",
	}

	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	receivers := make([]models.Receiver, 0, n)
	for i := 1; i <= n; i++ {
		keyType := models.PixKeyTypes[(i-1)%len(models.PixKeyTypes)]
		status := models.ReceiverStatusDraft
		if i%3 == 0 {
			status = models.ReceiverStatusValidated
		}
		receiver := models.Receiver{
			ID:            int64(i),
			CompletedName: fmt.Sprintf("Receiver %02d", i),
			CpfCnpj:       "719.805.580-00",
			Email:         fmt.Sprintf("RECEIVER%02d@EXAMPLE.COM", i),
			PixKeyType:    keyType,
			PixKey:        keys[keyType],
			Status:        status,
			CreatedAt:     created,
			UpdatedAt:     created,
		}
		repo.Put(receiver)
		receivers = append(receivers, receiver)
	}
	return receivers
}
