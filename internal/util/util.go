package util

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

func NowISO() string {
	return time.Now().Format(time.RFC3339)
}

func HMACSHA256Hex(secret, msg string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(msg))
	return hex.EncodeToString(mac.Sum(nil))
}
