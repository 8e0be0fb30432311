// Package cache memoizes beautified output in Redis, keyed by a hash
// of the source text and the options it was beautified with, the way
// core/db/ip.go keys a MaxMind lookup by IP. Never required for
// correctness — internal/discover falls back to beautifying directly
// whenever the cache is unavailable or disabled.
package cache

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/muraenateam/jsbeautify/internal/config"
	"github.com/muraenateam/jsbeautify/pkg/jsbeautify"
)

// Entry is the hash record stored per cache key, mirroring the
// redis-tagged struct core/db/ip.go's MaxMindLookup uses with
// HMSET/HGETALL + redis.ScanStruct.
type Entry struct {
	Key  string `redis:"key"`
	Body []byte `redis:"body"`
	Time string `redis:"time"`
}

// Cache wraps a Redis connection pool used to memoize Beautify calls.
type Cache struct {
	pool *redis.Pool
}

// New dials a Redis pool against addr, mirroring core/db/redis.go's
// newRedisPool (3 idle connections, 240s idle timeout, PING on
// borrow).
func New(addr string) *Cache {
	return &Cache{pool: newPool(addr)}
}

func newPool(addr string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			_, err := c.Do("PING")
			return err
		},
	}
}

// Key hashes source and the resolved options into a stable cache key.
func Key(source string, opts jsbeautify.RawOptions) string {
	h := sha256.New()
	h.Write([]byte(source))
	fmt.Fprintf(h, "|%v|%v|%v", opts["indent_size"], opts["indent_char"], opts["preserve_newlines"])
	return "jsbeautify:cache:" + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached beautified body for key, if present.
func (c *Cache) Get(key string) (string, bool, error) {
	rc := c.pool.Get()
	defer rc.Close()

	values, err := redis.Values(rc.Do("HGETALL", key))
	if err != nil {
		return "", false, err
	}
	if len(values) == 0 {
		return "", false, nil
	}

	var entry Entry
	if err := redis.ScanStruct(values, &entry); err != nil {
		return "", false, err
	}

	body, err := gunzip(entry.Body)
	if err != nil {
		return "", false, err
	}

	return body, true, nil
}

// Set stores the gzip-compressed beautified body under key, mirroring
// core/proxy/helper.go's packGzip (this package never writes brotli:
// dsnet/compress/brotli exposes only a Reader in this corpus).
func (c *Cache) Set(key, body string) error {
	compressed, err := gzip2(body)
	if err != nil {
		return err
	}

	rc := c.pool.Get()
	defer rc.Close()

	_, err = rc.Do("HMSET", key,
		"key", key,
		"body", compressed,
		"time", time.Now().String(),
	)
	return err
}

// Beautify returns a beautified result for source, consulting the
// cache first and filling it on a miss.
func (c *Cache) Beautify(source string, cfg config.Configuration) (string, error) {
	opts := cfg.BeautifyOptions()
	key := Key(source, opts)

	if cached, ok, err := c.Get(key); err == nil && ok {
		return cached, nil
	}

	result := jsbeautify.BeautifyString(source, opts)
	if err := c.Set(key, result); err != nil {
		return result, err
	}
	return result, nil
}

func gzip2(s string) ([]byte, error) {
	var b bytes.Buffer
	gz := gzip.NewWriter(&b)
	if _, err := gz.Write([]byte(s)); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func gunzip(data []byte) (string, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer r.Close()

	out, err := ioutil.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
