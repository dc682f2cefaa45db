package oss

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestValidatePhoto(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantCT      string
		wantExt     string
		wantStatus  int
	}{
		{"jpeg ok", "image/jpeg", 1024, "image/jpeg", "jpg", 0},
		{"jpg normaliza para jpeg", "image/jpg", 1024, "image/jpeg", "jpg", 0},
		{"png ok", "image/png", 1024, "image/png", "png", 0},
		{"webp ok", "image/webp", 1024, "image/webp", "webp", 0},
		{"gif ok", "image/gif", 1024, "image/gif", "gif", 0},
		{"charset no header é tolerado", "image/png; charset=binary", 1024, "image/png", "png", 0},
		{"maiúsculas são toleradas", "IMAGE/PNG", 1024, "image/png", "png", 0},
		{"pdf é rejeitado", "application/pdf", 1024, "", "", fiber.StatusUnprocessableEntity},
		{"texto é rejeitado", "text/plain", 1024, "", "", fiber.StatusUnprocessableEntity},
		{"acima de 5MiB é rejeitado", "image/png", MaxPhotoSize + 1, "", "", fiber.StatusUnprocessableEntity},
		{"exatamente 5MiB passa", "image/png", MaxPhotoSize, "image/png", "png", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, ext, err := ValidatePhoto(tt.contentType, tt.size)
			if tt.wantStatus != 0 {
				var fe *fiber.Error
				if !errors.As(err, &fe) {
					t.Fatalf("esperava *fiber.Error, veio %v", err)
				}
				if fe.Code != tt.wantStatus {
					t.Errorf("status = %d, quer %d", fe.Code, tt.wantStatus)
				}
				return
			}
			if err != nil {
				t.Fatalf("esperava aceitar, veio %v", err)
			}
			if ct != tt.wantCT || ext != tt.wantExt {
				t.Errorf("(%q, %q), quer (%q, %q)", ct, ext, tt.wantCT, tt.wantExt)
			}
		})
	}
}

func TestProfilePhotoKey(t *testing.T) {
	tests := []struct {
		entityDir, id, ext string
		want               string
	}{
		{"students", "abc", "jpg", "students/abc/profile.jpg"},
		{"teachers", "xyz", ".PNG", "teachers/xyz/profile.png"},
		{"students", "abc", "", "students/abc/profile.jpg"},
	}
	for _, tt := range tests {
		if got := ProfilePhotoKey(tt.entityDir, tt.id, tt.ext); got != tt.want {
			t.Errorf("ProfilePhotoKey(%q,%q,%q) = %q, quer %q", tt.entityDir, tt.id, tt.ext, got, tt.want)
		}
	}
}

func TestExtFromFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"foto.JPG", "jpg"},
		{"perfil.webp", "webp"},
		{"semextensao", "jpg"},
	}
	for _, tt := range tests {
		if got := ExtFromFilename(tt.in); got != tt.want {
			t.Errorf("ExtFromFilename(%q) = %q, quer %q", tt.in, got, tt.want)
		}
	}
}

func TestSniffPhotoContentType(t *testing.T) {
	pngMagic := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	if got := SniffPhotoContentType(pngMagic, "application/pdf"); got != "image/png" {
		t.Errorf("magic de PNG deveria vencer o header declarado, veio %q", got)
	}
	// bytes genéricos: cai para o content-type declarado
	if got := SniffPhotoContentType([]byte{0x00, 0x01, 0x02, 0x03}, "image/webp"); got != "image/webp" {
		t.Errorf("fallback declarado = %q, quer image/webp", got)
	}
}
