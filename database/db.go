package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names shared by the repositories.
const (
	AppointmentOptionsCollection = "appointmentOptions"
	BookingsCollection           = "bookings"
	UsersCollection              = "users"
	DoctorsCollection            = "doctors"
	PaymentsCollection           = "payments"
)

// Client is the process-scoped handle to MongoDB. It is opened once at startup
// and closed at shutdown; repositories receive its Database.
type Client struct {
	mongo  *mongo.Client
	dbName string
}

// Connect creates the MongoDB client and pings it. A failed ping is logged and
// the returned handle is still usable: the driver keeps retrying server
// selection on every operation.
func Connect(ctx context.Context, uri, dbName string, logger *zap.Logger) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Error("failed to ping MongoDB, continuing", zap.Error(err))
	} else {
		logger.Info("Connected to MongoDB successfully!", zap.String("database", dbName))
	}
	return &Client{mongo: client, dbName: dbName}, nil
}

// Database returns the application database.
func (c *Client) Database() *mongo.Database {
	return c.mongo.Database(c.dbName)
}

// Mongo exposes the underlying driver client, e.g. for health pings.
func (c *Client) Mongo() *mongo.Client {
	return c.mongo
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.mongo.Disconnect(ctx)
}

// WithTimeout derives a per-operation context from the caller's context.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}
