// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

// Package settings implements site branding: a small set of known keys the
// admin panel can edit and the public site reads on boot.
package settings

import "time"

// Setting is one branding value.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Known branding keys. Anything else is rejected.
const (
	KeySiteTitle      = "site_title"
	KeyTagline        = "tagline"
	KeyPrimaryColor   = "primary_color"
	KeySecondaryColor = "secondary_color"
	KeyLogoURL        = "logo_url"
	KeyHeroImageURL   = "hero_image_url"
	KeyContactEmail   = "contact_email"
	KeyDiscordURL     = "discord_url"
	KeyInstagramURL   = "instagram_url"
)

// Defaults are the values served before an admin has touched anything.
var Defaults = map[string]string{
	KeySiteTitle:      "Raven Strike Force",
	KeyTagline:        "Airsoft team",
	KeyPrimaryColor:   "#1a1a1a",
	KeySecondaryColor: "#c8102e",
	KeyLogoURL:        "",
	KeyHeroImageURL:   "",
	KeyContactEmail:   "",
	KeyDiscordURL:     "",
	KeyInstagramURL:   "",
}

// IsKnownKey reports whether key is one of the editable branding keys.
func IsKnownKey(key string) bool {
	_, ok := Defaults[key]
	return ok
}

// Field identifiers for validation.
const (
	FieldKey   = "key"
	FieldValue = "value"
)
