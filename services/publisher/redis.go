package publisher

import (
	"context"
	"encoding/base64"

	"sjsage522/zenlesscollector/logger"
	apperrors "sjsage522/zenlesscollector/pkg/errors"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher implements Publisher using a Redis stream
type RedisPublisher struct {
	client          *redis.Client
	stream          string
	streamMaxLength int
	log             *logger.Logger
}

// NewRedisPublisher creates a new Redis publisher
func NewRedisPublisher(addr string, db int, stream string, streamMaxLength int) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	return &RedisPublisher{
		client:          client,
		stream:          stream,
		streamMaxLength: streamMaxLength,
		log:             logger.ForPublisher(),
	}
}

// Publish publishes a message to the Redis stream.
// The message is base64 encoded before publishing.
func (p *RedisPublisher) Publish(ctx context.Context, key string, message []byte) error {
	encodedMessage := base64.StdEncoding.EncodeToString(message)

	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			key: encodedMessage,
		},
	}).Err()
	if err != nil {
		return apperrors.NewPublisher("redis", "xadd "+p.stream, err)
	}

	p.log.Debug().Str("stream", p.stream).Str("key", key).Msg("Published message")
	return nil
}

// TrimStreams trims the stream to the configured maximum length
func (p *RedisPublisher) TrimStreams(ctx context.Context) error {
	if p.streamMaxLength <= 0 {
		return nil
	}
	err := p.client.XTrimMaxLen(ctx, p.stream, int64(p.streamMaxLength)).Err()
	if err != nil {
		return apperrors.NewPublisher("redis", "xtrim "+p.stream, err)
	}
	return nil
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
