package config

import (
	"fmt"
	"strings"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SessionKey returns the cache key for an issued token's session record.
// The value is the associate id; deleting the key revokes the token.
func (r *CacheKeyStruct) SessionKey(jti string) string {
	return fmt.Sprintf("session:%s", jti)
}

// TalentStatsKey returns the cache key for the talent dashboard payload.
func (r *CacheKeyStruct) TalentStatsKey() string {
	return "talent:dashboard:stats"
}

// NotificationChannel returns the pub/sub channel for a user's notifications.
// Emails are compared case-insensitively everywhere, so the channel is too.
func (r *CacheKeyStruct) NotificationChannel(email string) string {
	return fmt.Sprintf("notify:%s", strings.ToLower(email))
}

var CacheKey = NewCacheKeyStruct()
