package service

import (
	"strings"
	"testing"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT()

	token, err := GenerateToken(42, false)
	if err != nil {
		t.Fatalf("не удалось выпустить токен: %v", err)
	}

	userID, isAdmin, err := ParseToken(token)
	if err != nil {
		t.Fatalf("не удалось разобрать токен: %v", err)
	}
	if userID != 42 || isAdmin {
		t.Fatalf("claims не совпали: user_id=%d is_admin=%v", userID, isAdmin)
	}
}

func TestParseToken_AdminFlag(t *testing.T) {
	InitJWT()

	token, err := GenerateToken(7, true)
	if err != nil {
		t.Fatalf("не удалось выпустить токен: %v", err)
	}

	_, isAdmin, err := ParseToken(token)
	if err != nil {
		t.Fatalf("не удалось разобрать токен: %v", err)
	}
	if !isAdmin {
		t.Fatal("флаг админа потерялся")
	}
}

func TestParseToken_Tampered(t *testing.T) {
	InitJWT()

	token, err := GenerateToken(42, false)
	if err != nil {
		t.Fatalf("не удалось выпустить токен: %v", err)
	}

	// портим payload: подпись перестает сходиться
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("неожиданный формат токена: %d частей", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	if _, _, err := ParseToken(tampered); err == nil {
		t.Fatal("ожидалась ошибка для измененного токена")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	InitJWT()

	if _, _, err := ParseToken("not-a-token"); err == nil {
		t.Fatal("ожидалась ошибка для мусорной строки")
	}
}
