// Package mongodb encapsula a conexão com o MongoDB usado como diretório
// remoto de lojas e avaliações
package mongodb

import (
	"context"

	"github.com/shakemap/shakemap-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Connection struct {
	client   *mongo.Client
	database *mongo.Database
}

func NewConnection(ctx context.Context, cfg config.Mongo) (*Connection, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	return &Connection{
		client:   client,
		database: client.Database(cfg.Database),
	}, nil
}

func (c *Connection) Database() *mongo.Database {
	return c.database
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Connection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
