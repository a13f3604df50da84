package diag

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// MetadataClient fetches live broker metadata from the cluster.
type MetadataClient interface {
	Brokers(ctx context.Context) ([]BrokerInfo, error)

	Close() error
}

// RealMetadataClient talks to an actual cluster over the Kafka
// metadata protocol.
type RealMetadataClient struct {
	conn *kafka.Conn
}

// NewRealMetadataClient connects to the given bootstrap address.
func NewRealMetadataClient(ctx context.Context, bootstrapAddr string, timeout time.Duration) (*RealMetadataClient, error) {
	dialer := &kafka.Dialer{Timeout: timeout}

	conn, err := dialer.DialContext(ctx, "tcp", bootstrapAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kafka broker %s: %w", bootstrapAddr, err)
	}

	return &RealMetadataClient{conn: conn}, nil
}

func (c *RealMetadataClient) Brokers(ctx context.Context) ([]BrokerInfo, error) {
	brokers, err := c.conn.Brokers()
	if err != nil {
		return nil, fmt.Errorf("failed to get brokers: %w", err)
	}

	infos := make([]BrokerInfo, 0, len(brokers))
	for _, broker := range brokers {
		infos = append(infos, BrokerInfo{
			ID:   broker.ID,
			Host: broker.Host,
			Port: broker.Port,
		})
	}
	return infos, nil
}

func (c *RealMetadataClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// MockMetadataClient implements MetadataClient for testing
type MockMetadataClient struct {
	LiveBrokers []BrokerInfo
	BrokersErr  error
	Calls       int
}

func (m *MockMetadataClient) Brokers(ctx context.Context) ([]BrokerInfo, error) {
	m.Calls++
	if m.BrokersErr != nil {
		return nil, m.BrokersErr
	}
	return m.LiveBrokers, nil
}

func (m *MockMetadataClient) Close() error {
	return nil
}
