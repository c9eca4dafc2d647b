package config

import (
	"encoding/base64"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("HT_TEST_STR", "value")
	if got := GetEnv("HT_TEST_STR", "fallback"); got != "value" {
		t.Errorf("got %q", got)
	}
	if got := GetEnv("HT_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("HT_TEST_INT", "42")
	if got := GetEnvInt("HT_TEST_INT", 7); got != 42 {
		t.Errorf("got %d", got)
	}
	t.Setenv("HT_TEST_INT", "not a number")
	if got := GetEnvInt("HT_TEST_INT", 7); got != 7 {
		t.Errorf("malformed value should fall back, got %d", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("HT_TEST_BOOL", "true")
	if !GetEnvBool("HT_TEST_BOOL", false) {
		t.Error("want true")
	}
	if GetEnvBool("HT_TEST_BOOL_MISSING", false) {
		t.Error("want fallback false")
	}
}

func TestSecretKey(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	t.Setenv("HT_TEST_KEY", base64.StdEncoding.EncodeToString(key))
	got := secretKey("HT_TEST_KEY")
	if len(got) != 32 || got[31] != 31 {
		t.Errorf("decoded key = %v", got)
	}

	t.Setenv("HT_TEST_KEY", "too short")
	if got := secretKey("HT_TEST_KEY"); len(got) != 32 {
		t.Errorf("invalid key should yield a random 32-byte key, got %d bytes", len(got))
	}
}
