package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/khobkhun/massage-booking/internal/config"
)

// captureWriter captures the response body while forwarding to the client.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int64
    limit  int64
}

func (cw *captureWriter) WriteHeader(code int) { cw.status = code; cw.ResponseWriter.WriteHeader(code) }
func (cw *captureWriter) Write(b []byte) (int, error) {
    if cw.limit <= 0 || cw.size < cw.limit {
        remain := cw.limit - cw.size
        if cw.limit <= 0 || int64(len(b)) <= remain {
            cw.buf.Write(b)
        } else {
            cw.buf.Write(b[:remain])
        }
        cw.size += int64(len(b))
    }
    return cw.ResponseWriter.Write(b)
}

// cacheKeyFrom builds a stable cache key from route and query under the
// configured prefix.  Availability answers depend only on date, minutes
// and the booking set, so route+query identifies a response completely
// between writes.
func cacheKeyFrom(cfg config.CacheConfig, c echo.Context) string {
    r := c.Request()
    parts := []string{r.Method, c.Path()}
    if strings.ToLower(cfg.KeyStrategy) != "route" {
        parts = append(parts, r.URL.RawQuery)
    }
    sum := sha1.Sum([]byte(strings.Join(parts, ":")))
    return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// NewAvailabilityCache caches JSON responses in Redis for the configured
// TTL.  Only successful responses to the configured methods are stored.
// Every cached entry lives under cfg.Prefix so InvalidateCache can drop
// the whole namespace when a booking commits; the TTL alone would let a
// just-taken slot linger in the answer.
func NewAvailabilityCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return func(c echo.Context) error { return next(c) } }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    maxBody := int64(cfg.MaxBodyBytes)

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
                return next(c)
            }

            ctx := c.Request().Context()
            key := cacheKeyFrom(cfg, c)

            if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
                c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
                c.Response().Header().Set("X-Cache", "HIT")
                c.Response().WriteHeader(http.StatusOK)
                _, werr := c.Response().Write(body)
                return werr
            }

            cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            if cw.status == http.StatusOK && (maxBody <= 0 || cw.size <= maxBody) {
                _ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), ttl).Err()
            }
            return nil
        }
    }
}

// InvalidateCache removes every cached response under the prefix.  Called
// after a booking commits so the next availability query reflects the new
// store state.  Errors are ignored: the entries expire on their own TTL
// anyway.
func InvalidateCache(ctx context.Context, rdb *redis.Client, prefix string) {
    if rdb == nil {
        return
    }
    var cursor uint64
    for {
        keys, next, err := rdb.Scan(ctx, cursor, prefix+":*", 100).Result()
        if err != nil {
            return
        }
        if len(keys) > 0 {
            _ = rdb.Del(ctx, keys...).Err()
        }
        if next == 0 {
            return
        }
        cursor = next
    }
}
