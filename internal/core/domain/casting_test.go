package domain

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func dataURL(size int) string {
	payload := base64.StdEncoding.EncodeToString(make([]byte, size))
	return "data:image/jpeg;base64," + payload
}

func TestIsRegistered(t *testing.T) {
	call := &CastingCall{
		Registrations: []Registration{
			{UserID: "u1"},
			{UserID: "u2"},
		},
	}
	if !call.IsRegistered("u1") {
		t.Error("expected u1 to be registered")
	}
	if call.IsRegistered("u3") {
		t.Error("expected u3 not to be registered")
	}
}

func TestValidateRegistrationMedia_WithinLimits(t *testing.T) {
	photos := []string{dataURL(1 << 20), dataURL(4 << 20)}
	videos := []string{dataURL(10 << 20)}
	if err := ValidateRegistrationMedia(photos, videos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRegistrationMedia_TooManyPhotos(t *testing.T) {
	photos := make([]string, MaxRegistrationPhotos+1)
	for i := range photos {
		photos[i] = dataURL(100)
	}
	err := ValidateRegistrationMedia(photos, nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestValidateRegistrationMedia_TooManyVideos(t *testing.T) {
	videos := make([]string, MaxRegistrationVideos+1)
	for i := range videos {
		videos[i] = dataURL(100)
	}
	err := ValidateRegistrationMedia(nil, videos)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestValidateRegistrationMedia_OversizedPhoto(t *testing.T) {
	err := ValidateRegistrationMedia([]string{dataURL(MaxPhotoBytes + 1024)}, nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for oversized photo, got %v", err)
	}
}

func TestValidateRegistrationMedia_OversizedVideo(t *testing.T) {
	err := ValidateRegistrationMedia(nil, []string{dataURL(MaxVideoBytes + 1024)})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for oversized video, got %v", err)
	}
}

func TestValidateRegistrationMedia_PhotoLimitStricterThanVideo(t *testing.T) {
	// 10MB is fine for a video but over the photo limit.
	if err := ValidateRegistrationMedia(nil, []string{dataURL(10 << 20)}); err != nil {
		t.Fatalf("10MB video should pass: %v", err)
	}
	if err := ValidateRegistrationMedia([]string{dataURL(10 << 20)}, nil); err == nil {
		t.Fatal("10MB photo should be rejected")
	}
}

func TestRegistrationMediaSize(t *testing.T) {
	photos := []string{dataURL(1000), dataURL(2000)}
	total := RegistrationMediaSize(photos, nil)
	// DecodedLen rounds up to the 3-byte quantum, allow small slack.
	if total < 3000 || total > 3010 {
		t.Errorf("total = %d, want ~3000", total)
	}
}

func TestDataURLSize_NonBase64FallsBackToLength(t *testing.T) {
	plain := "https://cdn.example.com/photo.jpg"
	if got := dataURLSize(plain); got != len(plain) {
		t.Errorf("plain URL size = %d, want %d", got, len(plain))
	}
	notBase64 := "data:text/plain,hello"
	if got := dataURLSize(notBase64); got != len(notBase64) {
		t.Errorf("non-base64 data URL size = %d, want %d", got, len(notBase64))
	}
}

func TestDataURLSize_EstimatesDecodedBytes(t *testing.T) {
	u := dataURL(3000)
	got := dataURLSize(u)
	if got < 3000 || got > 3003 {
		t.Errorf("decoded size estimate = %d, want ~3000", got)
	}
	// The estimate must reflect decoded bytes, not the longer encoded text.
	encoded := len(u) - strings.Index(u, ";base64,") - len(";base64,")
	if got >= encoded {
		t.Errorf("estimate %d should be below encoded length %d", got, encoded)
	}
}
