// Package redisstore connects to Redis and keeps rate limit counters there so
// that every API replica enforces one shared budget per client.
package redisstore
