package auth

import (
	"net/http/httptest"
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	a := New("secret", "refresh-secret", 15, 7)

	token, err := a.GenerateAccessToken("u1", "user@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	claims, err := a.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "user@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	a := New("secret", "refresh-secret", 15, 7)

	access, _ := a.GenerateAccessToken("u1", "user@example.com")
	refresh, _ := a.GenerateRefreshToken("u1", "user@example.com")

	if _, err := a.ValidateAccessToken(refresh); err == nil {
		t.Error("refresh token accepted as access token")
	}
	if _, err := a.ValidateRefreshToken(access); err == nil {
		t.Error("access token accepted as refresh token")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	a := New("secret", "refresh-secret", 15, 7)
	b := New("other-secret", "refresh-secret", 15, 7)

	token, _ := a.GenerateAccessToken("u1", "user@example.com")
	if _, err := b.ValidateAccessToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	a := New("secret", "refresh-secret", -1, 7)

	token, _ := a.GenerateAccessToken("u1", "user@example.com")
	if _, err := a.ValidateAccessToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestExtractClaims(t *testing.T) {
	a := New("secret", "refresh-secret", 15, 7)
	token, _ := a.GenerateAccessToken("u1", "user@example.com")

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	if claims := a.ExtractClaims(r); claims == nil || claims.UserID != "u1" {
		t.Errorf("claims = %v", claims)
	}

	// Scheme is case-insensitive.
	r.Header.Set("Authorization", "bearer "+token)
	if a.ExtractClaims(r) == nil {
		t.Error("lowercase bearer rejected")
	}

	for _, header := range []string{"", token, "Basic " + token, "Bearer garbage"} {
		r := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		if a.ExtractClaims(r) != nil {
			t.Errorf("header %q yielded claims", header)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	a := New("secret", "refresh-secret", 15, 7)

	hash, err := a.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("password stored in the clear")
	}
	if !a.CheckPassword(hash, "hunter22") {
		t.Error("correct password rejected")
	}
	if a.CheckPassword(hash, "hunter23") {
		t.Error("wrong password accepted")
	}
}
