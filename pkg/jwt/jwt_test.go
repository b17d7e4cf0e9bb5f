package jwt

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

// 生成后能正确解析出身份信息
func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "writer", "access", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" || claims.Role != "writer" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

// token 类型不匹配时拒绝
func TestParse_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "bob", "viewer", "refresh", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for wrong token type")
	}
}

// 过期 token 拒绝
func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, "bob", "viewer", "access", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

// 密钥不对拒绝
func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, "bob", "viewer", "access", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), "access", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}
