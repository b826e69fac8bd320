package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

const (
	tourTimesKey      = "catalog:tour_times"
	lastBookingPrefix = "last_booking:"
	lastBookingTTL    = 24 * time.Hour
)

// ErrNotFound возвращается, когда ключ отсутствует в кеше
var ErrNotFound = errors.New("cache: key not found")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// NewRedisClient создает клиент Redis и проверяет соединение
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("cache: failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// Cache кеш поверх Redis
// Хранит каталог времен туров (статичный справочник платформы, короткий TTL)
// и публичный идентификатор последнего созданного бронирования на сессию
// (повторное открытие страницы подтверждения). Доступность слотов НЕ кешируется:
// она перезапрашивается при каждой смене даты.
type Cache struct {
	client     *redis.Client
	catalogTTL time.Duration
	log        Logger
}

// New создает новый экземпляр кеша
func New(client *redis.Client, catalogTTL time.Duration, log Logger) *Cache {
	return &Cache{
		client:     client,
		catalogTTL: catalogTTL,
		log:        log,
	}
}

// GetTourTimes возвращает каталог времен туров из кеша
func (c *Cache) GetTourTimes(ctx context.Context) ([]domain.TourTime, error) {
	raw, err := c.client.Get(ctx, tourTimesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("cache: get tour times: %w", err)
	}

	var times []domain.TourTime
	if err := json.Unmarshal(raw, &times); err != nil {
		// Битое значение в кеше эквивалентно промаху
		c.log.Warn("cache: corrupted tour times value, treating as miss: %v", err)
		return nil, ErrNotFound
	}
	return times, nil
}

// SetTourTimes сохраняет каталог времен туров
func (c *Cache) SetTourTimes(ctx context.Context, times []domain.TourTime) error {
	raw, err := json.Marshal(times)
	if err != nil {
		return fmt.Errorf("cache: marshal tour times: %w", err)
	}
	if err := c.client.Set(ctx, tourTimesKey, raw, c.catalogTTL).Err(); err != nil {
		return fmt.Errorf("cache: set tour times: %w", err)
	}
	return nil
}

// SetLastBookingID запоминает публичный идентификатор последнего созданного
// бронирования для сессии
func (c *Cache) SetLastBookingID(ctx context.Context, sessionID, publicID string) error {
	if err := c.client.Set(ctx, lastBookingPrefix+sessionID, publicID, lastBookingTTL).Err(); err != nil {
		return fmt.Errorf("cache: set last booking id: %w", err)
	}
	return nil
}

// GetLastBookingID возвращает публичный идентификатор последнего бронирования сессии
func (c *Cache) GetLastBookingID(ctx context.Context, sessionID string) (string, error) {
	id, err := c.client.Get(ctx, lastBookingPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("cache: get last booking id: %w", err)
	}
	return id, nil
}
