package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// Media limits enforced server-side on registration payloads. They mirror
// what the upload form advertises, so a well-behaved client never hits them.
const (
	MaxRegistrationPhotos = 5
	MaxRegistrationVideos = 3
	MaxPhotoBytes         = 5 << 20  // 5MB decoded
	MaxVideoBytes         = 15 << 20 // 15MB decoded
)

// Registration is one talent's application to a casting call. Media is
// stored inline as data URLs inside the casting document.
type Registration struct {
	UserID       string    `json:"userId"`
	PhoneNumber  string    `json:"phoneNumber"`
	Photos       []string  `json:"photos,omitempty"`
	Videos       []string  `json:"videos,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// CastingCall is an open audition posted by a casting account.
type CastingCall struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	Location      string         `json:"location"`
	Date          time.Time      `json:"date"`
	Images        []string       `json:"images,omitempty"`
	CreatedBy     string         `json:"createdBy"`
	Registrations []Registration `json:"registrations,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// IsRegistered reports whether userID already appears in the registered set.
func (c *CastingCall) IsRegistered(userID string) bool {
	for _, r := range c.Registrations {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// ValidateRegistrationMedia enforces count and per-file size limits on the
// inline media of a registration payload.
func ValidateRegistrationMedia(photos, videos []string) error {
	if len(photos) > MaxRegistrationPhotos {
		return fmt.Errorf("%w: maximum %d photos allowed", ErrValidation, MaxRegistrationPhotos)
	}
	if len(videos) > MaxRegistrationVideos {
		return fmt.Errorf("%w: maximum %d videos allowed", ErrValidation, MaxRegistrationVideos)
	}
	for i, p := range photos {
		if size := dataURLSize(p); size > MaxPhotoBytes {
			return fmt.Errorf("%w: photo %d exceeds the %dMB limit", ErrValidation, i+1, MaxPhotoBytes>>20)
		}
	}
	for i, v := range videos {
		if size := dataURLSize(v); size > MaxVideoBytes {
			return fmt.Errorf("%w: video %d exceeds the %dMB limit", ErrValidation, i+1, MaxVideoBytes>>20)
		}
	}
	return nil
}

// RegistrationMediaSize returns the total decoded size of a payload's
// inline media.
func RegistrationMediaSize(photos, videos []string) int {
	total := 0
	for _, p := range photos {
		total += dataURLSize(p)
	}
	for _, v := range videos {
		total += dataURLSize(v)
	}
	return total
}

// dataURLSize estimates the decoded byte size of a base64 data URL without
// decoding it. Non-base64 payloads (plain URLs) count their literal length.
func dataURLSize(s string) int {
	idx := strings.Index(s, ";base64,")
	if !strings.HasPrefix(s, "data:") || idx < 0 {
		return len(s)
	}
	payload := s[idx+len(";base64,"):]
	return base64.StdEncoding.DecodedLen(len(payload))
}
