// internals/helpers/oss/convert_image.go
package oss

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

/* =======================================================================
   Re-encode opcional para WebP (knobs via ENV)
======================================================================= */

func webpEnabled() bool {
	v := strings.ToLower(getEnv("IMAGE_WEBP_ENABLE"))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

type WebPOptions struct {
	MaxW    int     // limite de largura (resize mantendo proporção)
	MaxH    int     // limite de altura
	Quality float32 // qualidade lossy
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

// decodeImage decodifica jpeg/png/webp por sniff de MIME, com fallback
// pela extensão do nome do arquivo.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("arquivo vazio")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("formato não suportado: %s", ct)
}

// ConvertToWebP: ler → decodificar → resize (se exceder MaxW/MaxH) → webp.
func ConvertToWebP(r io.Reader, filename string) ([]byte, error) {
	return ConvertToWebPWithOptions(r, filename, defaultWebPOptionsFromEnv())
}

func ConvertToWebPWithOptions(r io.Reader, filename string, opts WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	if opts.MaxW > 0 || opts.MaxH > 0 {
		b := img.Bounds()
		if (opts.MaxW > 0 && b.Dx() > opts.MaxW) || (opts.MaxH > 0 && b.Dy() > opts.MaxH) {
			img = imaging.Fit(img, opts.MaxW, opts.MaxH, imaging.CatmullRom)
		}
	}

	q := opts.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
