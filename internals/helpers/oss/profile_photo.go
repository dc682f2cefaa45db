// internals/helpers/oss/profile_photo.go
package oss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Limite do uploader (igual ao front): 5 MiB.
const MaxPhotoSize = int64(5 * 1024 * 1024)

var allowedPhotoMIME = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// ValidatePhoto checa tipo e tamanho ANTES de qualquer escrita no blob store.
// Retorna o content-type normalizado e a extensão da chave.
func ValidatePhoto(contentType string, size int64) (string, string, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	ext, ok := allowedPhotoMIME[ct]
	if !ok {
		return "", "", fiber.NewError(fiber.StatusUnprocessableEntity,
			"Tipo de arquivo inválido. Apenas imagens (jpeg, png, webp, gif) são permitidas.")
	}
	if ct == "image/jpg" {
		ct = "image/jpeg"
	}
	if size > MaxPhotoSize {
		return "", "", fiber.NewError(fiber.StatusUnprocessableEntity,
			"Arquivo muito grande. Tamanho máximo: 5MB.")
	}
	return ct, ext, nil
}

// SniffPhotoContentType detecta o MIME real pelos primeiros bytes; se a
// detecção for genérica, cai para o header do multipart.
func SniffPhotoContentType(head []byte, declared string) string {
	ct := http.DetectContentType(head)
	if ct == "application/octet-stream" && declared != "" {
		return declared
	}
	return ct
}

// ProfilePhotoKey monta a chave estável do blob:
// "{students|teachers}/{id}/profile.{ext}".
func ProfilePhotoKey(entityDir, id, ext string) string {
	ext = strings.TrimLeft(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("%s/%s/profile.%s", entityDir, id, ext)
}

// ExtFromFilename extrai a extensão do nome enviado (fallback "jpg").
func ExtFromFilename(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return "jpg"
	}
	return ext
}

// UploadProfilePhoto valida e grava a foto de perfil de um aluno ou
// professor. Retorna a chave gravada e a URL pública (/api/files/{key}).
// Com IMAGE_WEBP_ENABLE=true a imagem é re-encodada para WebP antes do put.
func (s *OSSService) UploadProfilePhoto(ctx context.Context, entityDir, id string, fh *multipart.FileHeader) (key, publicURL string, err error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Nenhum arquivo enviado")
	}
	if fh.Size > MaxPhotoSize {
		return "", "", fiber.NewError(fiber.StatusUnprocessableEntity,
			"Arquivo muito grande. Tamanho máximo: 5MB.")
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("abrir arquivo: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", "", fmt.Errorf("ler arquivo: %w", err)
	}

	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := SniffPhotoContentType(head, fh.Header.Get("Content-Type"))
	ct, ext, err := ValidatePhoto(ct, int64(len(all)))
	if err != nil {
		return "", "", err
	}

	payload := all
	if webpEnabled() && ct != "image/gif" {
		// GIF fica de fora do re-encode (perderia animação).
		if converted, cerr := ConvertToWebP(bytes.NewReader(all), fh.Filename); cerr == nil {
			payload = converted
			ct = "image/webp"
			ext = "webp"
		}
		// falha de conversão não bloqueia o upload: segue com o original
	}

	key = ProfilePhotoKey(entityDir, id, ext)
	if err := s.PutObject(ctx, key, bytes.NewReader(payload), ct); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Falha ao gravar no blob store")
	}
	return key, "/api/files/" + key, nil
}
