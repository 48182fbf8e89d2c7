package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// A malformed object id must come back as ErrNotFound before any round trip
// to the database; these tests never dial the server.
func TestInvalidObjectIDIsNotFound(t *testing.T) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	s := NewMongoUserStore(client.Database("loopcart_test"))

	_, err = s.FindByID(context.Background(), "not-a-hex-id")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.AddToWishlist(context.Background(), "not-a-hex-id", "p1")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.RemoveFromWishlist(context.Background(), "not-a-hex-id", "p1")
	require.ErrorIs(t, err, ErrNotFound)
}
