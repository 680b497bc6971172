package cache

import (
	"time"

	"github.com/gomodule/redigo/redis"
)

// Client wraps a Redis connection pool. It backs both the session
// store (keys with expiry) and the job queues (lists).
type Client struct {
	pool *redis.Pool
}

// Connect dials the Redis server at the given URL and verifies the
// connection with a PING.
func Connect(url string) (*Client, error) {
	pool := &redis.Pool{
		MaxIdle:     10,
		MaxActive:   50,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(url)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	c := &Client{pool: pool}
	if err := c.Ping(); err != nil {
		pool.Close()
		return nil, err
	}
	return c, nil
}

// Close releases all pooled connections.
func (c *Client) Close() error {
	return c.pool.Close()
}

// Ping reports connectivity errors, if any.
func (c *Client) Ping() error {
	conn := c.pool.Get()
	defer conn.Close()

	_, err := conn.Do("PING")
	return err
}

// SetEx stores a value under key with a TTL in seconds.
func (c *Client) SetEx(key, value string, ttlSeconds int) error {
	conn := c.pool.Get()
	defer conn.Close()

	_, err := conn.Do("SETEX", key, ttlSeconds, value)
	return err
}

// Get returns the value under key, with a found flag distinguishing
// absence from errors.
func (c *Client) Get(key string) (string, bool, error) {
	conn := c.pool.Get()
	defer conn.Close()

	value, err := redis.String(conn.Do("GET", key))
	if err == redis.ErrNil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Del removes key. Deleting an absent key is not an error.
func (c *Client) Del(key string) error {
	conn := c.pool.Get()
	defer conn.Close()

	_, err := conn.Do("DEL", key)
	return err
}

// RPush appends a payload to the list, creating it if needed.
func (c *Client) RPush(list string, payload []byte) error {
	conn := c.pool.Get()
	defer conn.Close()

	_, err := conn.Do("RPUSH", list, payload)
	return err
}

// BLPop pops the oldest payload from the list, blocking up to timeout.
// The found flag is false when the timeout elapsed with nothing queued.
func (c *Client) BLPop(list string, timeout time.Duration) ([]byte, bool, error) {
	conn := c.pool.Get()
	defer conn.Close()

	values, err := redis.ByteSlices(conn.Do("BLPOP", list, int(timeout.Seconds())))
	if err == redis.ErrNil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	// BLPOP replies with [list, payload].
	return values[1], true, nil
}
