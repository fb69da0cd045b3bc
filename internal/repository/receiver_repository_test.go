package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/transfeera/receiver-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupMongoForTest starts a disposable MongoDB container and returns a
// repository over a fresh database
func setupMongoForTest(t *testing.T) *MongoReceiverRepository {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration tests in short mode")
	}

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return NewMongoReceiverRepository(client.Database("receivers_test"), "receivers", "counters")
}

func newTestReceiver(name string, keyType models.PixKeyType, key string) *models.Receiver {
	receiver := &models.Receiver{
		CompletedName: name,
		CpfCnpj:       "719.805.580-00",
		Email:         "JOHN@EXAMPLE.COM",
		PixKeyType:    keyType,
		PixKey:        key,
	}
	receiver.BeforeCreate()
	return receiver
}

func TestSearchFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, SearchFilter(""))

	filter := SearchFilter("a.b")
	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, len(searchFields))
	for i, field := range searchFields {
		assert.Equal(t, bson.M{field: bson.M{"$regex": `a\.b`}}, or[i])
	}
}

func TestMongoReceiverRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := setupMongoForTest(t)
	ctx := context.Background()

	first := newTestReceiver("Ana", models.PixKeyTypeCPF, "719.805.580-00")
	second := newTestReceiver("Bruno", models.PixKeyTypeEmail, "bruno@example.com")

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	found, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bruno", found.CompletedName)
	assert.Equal(t, models.ReceiverStatusDraft, found.Status)
	assert.Equal(t, models.PixKeyTypeEmail, found.PixKeyType)
}

func TestMongoReceiverRepository_FindByIDNotFound(t *testing.T) {
	repo := setupMongoForTest(t)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, models.ErrReceiverNotFound)
}

func TestMongoReceiverRepository_Search(t *testing.T) {
	repo := setupMongoForTest(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Create(ctx, newTestReceiver(fmt.Sprintf("Receiver %02d", i), models.PixKeyTypeCPF, "719.805.580-00")))
	}
	require.NoError(t, repo.Create(ctx, newTestReceiver("Other", models.PixKeyTypeEmail, "other@example.com")))

	values, count, err := repo.Search(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(26), count)
	require.Len(t, values, 10)
	assert.Equal(t, int64(1), values[0].ID)

	values, count, err = repo.Search(ctx, "Receiver", 20, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), count)
	require.Len(t, values, 5)
	assert.Equal(t, int64(21), values[0].ID)

	// case sensitive
	_, count, err = repo.Search(ctx, "receiver", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	values, count, err = repo.Search(ctx, "EMAIL", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, "Other", values[0].CompletedName)

	// regex metacharacters are matched literally
	_, count, err = repo.Search(ctx, ".*", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	values, count, err = repo.Search(ctx, "Rascunho", 100, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(26), count)
	assert.Empty(t, values)
}

func TestMongoReceiverRepository_Update(t *testing.T) {
	repo := setupMongoForTest(t)
	ctx := context.Background()

	receiver := newTestReceiver("Ana", models.PixKeyTypeCPF, "719.805.580-00")
	require.NoError(t, repo.Create(ctx, receiver))

	name := "Ana Maria"
	keyType := models.PixKeyTypePhone
	key := "+5511987654321"
	updated, err := repo.Update(ctx, receiver.ID, models.ReceiverChanges{
		CompletedName: &name,
		PixKeyType:    &keyType,
		PixKey:        &key,
	})
	require.NoError(t, err)
	assert.Equal(t, receiver.ID, updated.ID)
	assert.Equal(t, "Ana Maria", updated.CompletedName)
	assert.Equal(t, models.PixKeyTypePhone, updated.PixKeyType)
	assert.Equal(t, "+5511987654321", updated.PixKey)
	assert.Equal(t, receiver.Email, updated.Email)
	assert.False(t, updated.UpdatedAt.Before(receiver.UpdatedAt))

	_, err = repo.Update(ctx, 999, models.ReceiverChanges{CompletedName: &name})
	assert.ErrorIs(t, err, models.ErrReceiverNotFound)
}

func TestMongoReceiverRepository_Delete(t *testing.T) {
	repo := setupMongoForTest(t)
	ctx := context.Background()

	receiver := newTestReceiver("Ana", models.PixKeyTypeCPF, "719.805.580-00")
	require.NoError(t, repo.Create(ctx, receiver))

	removed, err := repo.Delete(ctx, receiver.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", removed.CompletedName)

	_, err = repo.Delete(ctx, receiver.ID)
	assert.ErrorIs(t, err, models.ErrReceiverNotFound)
}

func TestMongoReceiverRepository_DeleteMany(t *testing.T) {
	repo := setupMongoForTest(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Create(ctx, newTestReceiver("Ana", models.PixKeyTypeCPF, "719.805.580-00")))
	}

	deleted, err := repo.DeleteMany(ctx, []int64{1, 3, 42})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, count, err := repo.Search(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	deleted, err = repo.DeleteMany(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestMongoReceiverRepository_Ping(t *testing.T) {
	repo := setupMongoForTest(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
