package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Fatal("expected the original password to verify")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Fatal("expected a wrong password to fail verification")
	}
}

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "coach@club.pt", "Ana", "Silva", []string{"coach"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "coach@club.pt" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "coach" {
		t.Fatalf("expected roles [coach], got %v", claims.Roles)
	}
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT("user-1", "coach@club.pt", "Ana", "Silva", nil)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ValidateJWT(token + "x"); err == nil {
		t.Fatal("expected a tampered token to be rejected")
	}
	if _, err := ValidateJWT("not-a-jwt"); err == nil {
		t.Fatal("expected a malformed token to be rejected")
	}
}
