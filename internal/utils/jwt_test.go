// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-registry/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer   = "test-issuer"
	testAudience = "test-audience"
	testKey      = "secret-key"
)

func testParams() models.TokenValidationParams {
	return models.TokenValidationParams{
		Issuer:           testIssuer,
		Audience:         testAudience,
		SignKey:          testKey,
		ValidateLifetime: true,
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAudience, 123, time.Hour, testKey)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Issuer != testIssuer {
		t.Errorf("expected issuer %s, got %s", testIssuer, token.Issuer)
	}
	if token.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Subject)
	}
	if len(token.Audience) != 1 || token.Audience[0] != testAudience {
		t.Errorf("expected audience [%s], got %v", testAudience, token.Audience)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		audience string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "aud", time.Hour, "key"},
		{"empty audience", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "aud", 0, "key"},
		{"empty key", "iss", "aud", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.audience, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken(testIssuer, testAudience, 456, 5*time.Minute, testKey)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, testParams())

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.Subject != "456" {
		t.Errorf("expected subject 456, got %s", parsed.Subject)
	}
	if parsed.String() != genToken.SignedString {
		t.Error("expected parsed token to keep its compact form")
	}
	if parsed.Token == nil || !parsed.Valid {
		t.Error("expected a valid parsed jwt.Token")
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, _ := GenerateJWTToken(testIssuer, testAudience, 1, time.Hour, testKey)
	expired, _ := GenerateJWTToken(testIssuer, testAudience, 1, -time.Hour, testKey)
	wrongKey, _ := GenerateJWTToken(testIssuer, testAudience, 1, time.Hour, "wrong-key")
	wrongIssuer, _ := GenerateJWTToken("fake-issuer", testAudience, 1, time.Hour, testKey)
	wrongAudience, _ := GenerateJWTToken(testIssuer, "someone-else", 1, time.Hour, testKey)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:   testIssuer,
		Audience: jwt.ClaimStrings{testAudience},
	})
	noExpString, _ := noExp.SignedString([]byte(testKey))

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unsignedString, _ := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name    string
		token   string
		params  func(p *models.TokenValidationParams)
		wantErr error
	}{
		{name: "signature mismatch", token: wrongKey.SignedString, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "expired", token: expired.SignedString, wantErr: jwt.ErrTokenExpired},
		{name: "wrong issuer", token: wrongIssuer.SignedString, wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "wrong audience", token: wrongAudience.SignedString, wantErr: jwt.ErrTokenInvalidAudience},
		{name: "missing exp", token: noExpString, wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "alg none", token: unsignedString, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "malformed", token: "not.a.token", wantErr: jwt.ErrTokenMalformed},
		{
			name:    "wrong issuer without lifetime check",
			token:   wrongIssuer.SignedString,
			params:  func(p *models.TokenValidationParams) { p.ValidateLifetime = false },
			wantErr: jwt.ErrTokenInvalidIssuer,
		},
		{
			name:    "wrong audience without lifetime check",
			token:   wrongAudience.SignedString,
			params:  func(p *models.TokenValidationParams) { p.ValidateLifetime = false },
			wantErr: jwt.ErrTokenInvalidAudience,
		},
		{
			name:   "empty sign key",
			token:  valid.SignedString,
			params: func(p *models.TokenValidationParams) { p.SignKey = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testParams()
			if tt.params != nil {
				tt.params(&params)
			}

			_, err := ValidateAndParseJWTToken(tt.token, params)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_LifetimeCheckDisabled(t *testing.T) {
	expired, _ := GenerateJWTToken(testIssuer, testAudience, 7, -time.Hour, testKey)

	params := testParams()
	params.ValidateLifetime = false

	parsed, err := ValidateAndParseJWTToken(expired.SignedString, params)
	if err != nil {
		t.Fatalf("expected expired token to pass, got: %v", err)
	}
	if parsed.Subject != "7" {
		t.Errorf("expected subject 7, got %s", parsed.Subject)
	}
}

func TestValidateAndParseJWTToken_ClockSkew(t *testing.T) {
	recent, _ := GenerateJWTToken(testIssuer, testAudience, 1, -30*time.Second, testKey)

	params := testParams()
	params.ClockSkew = time.Minute

	if _, err := ValidateAndParseJWTToken(recent.SignedString, params); err != nil {
		t.Fatalf("expected token within leeway to pass, got: %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
