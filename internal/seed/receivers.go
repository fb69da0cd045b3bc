package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/transfeera/receiver-api/internal/models"
	"github.com/transfeera/receiver-api/internal/repository"
	"github.com/transfeera/receiver-api/internal/utils"
	"go.uber.org/zap"
)

var (
	firstNames = []string{"Ana", "Bruno", "Carla", "Diego", "Eduarda", "Felipe", "Gabriela", "Heitor", "Isabela", "João", "Larissa", "Marcos", "Natália", "Otávio", "Paula", "Rafael", "Sofia", "Thiago", "Vitória", "William"}
	lastNames  = []string{"Almeida", "Barbosa", "Cardoso", "Costa", "Ferreira", "Gomes", "Lima", "Martins", "Oliveira", "Pereira", "Ribeiro", "Rocha", "Santos", "Silva", "Souza"}
	domains    = []string{"example.com", "mail.com", "empresa.com.br", "teste.org"}
)

// Generator builds random receivers that pass request validation
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator driven by the given source
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, now: func() time.Time { return time.Now().UTC() }}
}

// Receiver returns one random receiver without an id. Status, key type and
// the presence of an email are picked uniformly.
func (g *Generator) Receiver() models.Receiver {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]

	receiver := models.Receiver{
		CompletedName: first + " " + last,
		Status:        models.ReceiverStatusDraft,
	}

	if g.rng.Intn(2) == 0 {
		receiver.CpfCnpj = utils.GenerateCPF(g.rng)
	} else {
		receiver.CpfCnpj = utils.GenerateCNPJ(g.rng)
	}

	if g.rng.Intn(2) == 0 {
		receiver.Email = strings.ToUpper(g.email(first, last))
	}

	if g.rng.Intn(2) == 0 {
		receiver.Status = models.ReceiverStatusValidated
	}

	receiver.PixKeyType = models.PixKeyTypes[g.rng.Intn(len(models.PixKeyTypes))]
	receiver.PixKey = g.pixKey(receiver.PixKeyType, first, last)

	now := g.now()
	receiver.CreatedAt = now
	receiver.UpdatedAt = now
	return receiver
}

func (g *Generator) pixKey(keyType models.PixKeyType, first, last string) string {
	switch keyType {
	case models.PixKeyTypeCPF:
		return utils.GenerateCPF(g.rng)
	case models.PixKeyTypeCNPJ:
		return utils.GenerateCNPJ(g.rng)
	case models.PixKeyTypeEmail:
		return strings.ToLower(g.email(first, last))
	case models.PixKeyTypePhone:
		return utils.GenerateMobilePhone(g.rng)
	default:
		key, err := uuid.NewRandomFromReader(g.rng)
		if err != nil {
			return uuid.NewString()
		}
		return key.String()
	}
}

func (g *Generator) email(first, last string) string {
	local := asciiFold(first) + "." + asciiFold(last)
	if g.rng.Intn(2) == 0 {
		local = fmt.Sprintf("%s%d", local, g.rng.Intn(100))
	}
	return local + "@" + domains[g.rng.Intn(len(domains))]
}

var accents = strings.NewReplacer("á", "a", "ã", "a", "â", "a", "é", "e", "ê", "e", "í", "i", "ó", "o", "ô", "o", "õ", "o", "ú", "u", "ç", "c")

func asciiFold(s string) string {
	return accents.Replace(strings.ToLower(s))
}

// Receivers stores n random receivers and returns them with their ids
func Receivers(ctx context.Context, repo repository.ReceiverRepository, gen *Generator, n int, logger *zap.Logger) ([]models.Receiver, error) {
	created := make([]models.Receiver, 0, n)
	for i := 0; i < n; i++ {
		receiver := gen.Receiver()
		if err := repo.Create(ctx, &receiver); err != nil {
			return created, fmt.Errorf("failed to seed receiver %d of %d: %w", i+1, n, err)
		}
		logger.Debug("seeded receiver",
			zap.Int64("id", receiver.ID),
			zap.String("status", string(receiver.Status)),
			zap.String("pix_key_type", string(receiver.PixKeyType)),
		)
		created = append(created, receiver)
	}
	return created, nil
}
