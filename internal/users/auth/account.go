// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

/*
Package auth implements the identity and session layer: registration, login,
refresh-token rotation, and the password recovery flows.

# Architecture

Identity is split across two rows created together at registration: the
users.account row owned by this package (credentials, suspension marker) and
the users.profile row owned by the profile package (display data, role,
status). Authorization decisions elsewhere in the system read the role from
the profile, never from this package's entities.

# Security

Passwords are bcrypt-hashed; refresh tokens are opaque random values stored
only as SHA-256 hashes in tracked sessions. A suspended account is refused at
login and again at every token refresh.
*/
package auth

import "time"

// # Domain Entities

// Account represents the credential record of a registered member.
type Account struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Explicitly omitted from JSON for security.
	IsVerified   bool       `json:"is_verified"`
	BannedUntil  *time.Time `json:"-"` // Moderation detail, not exposed on auth responses.
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Suspended reports whether the account's suspension marker is active.
func (account *Account) Suspended() bool {
	return account.BannedUntil != nil && account.BannedUntil.After(time.Now())
}

// Session represents an active refresh-token session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // Hashed value of the refresh token. Omitted for security.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldDisplayName     = "display_name"
	FieldCallsign        = "callsign"
	FieldLogin           = "login"
	FieldToken           = "token"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
)
