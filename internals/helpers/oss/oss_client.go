// internals/helpers/oss/oss_client.go
package oss

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

/* =======================================================================
   OSS Service: blob store de fotos de perfil
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // opcional: "uploads"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("faltam env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// verificação leve da localização do bucket
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] aviso: location check pulado por AccessDenied (bucket=%s). Seguindo.", bucketName)
		} else {
			return nil, fmt.Errorf("verificar bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSService) fullKey(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.Prefix != "" {
		return s.Prefix + "/" + key
	}
	return key
}

// PutObject grava o blob com content-type e cache agressivo (a chave do
// perfil é estável, então o conteúdo novo invalida via ETag).
func (s *OSSService) PutObject(ctx context.Context, key string, r io.Reader, contentType string) error {
	if key == "" {
		return fmt.Errorf("chave vazia")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000"),
	}
	return s.Bucket.PutObject(s.fullKey(key), r, opts...)
}

// ObjectMeta é o subconjunto de metadados que o handler de arquivos repassa.
type ObjectMeta struct {
	ContentType string
	ETag        string
}

// GetObject devolve o stream + metadados; o caller fecha o ReadCloser.
func (s *OSSService) GetObject(ctx context.Context, key string) (io.ReadCloser, ObjectMeta, error) {
	full := s.fullKey(key)

	header, err := s.Bucket.GetObjectDetailedMeta(full, oss.WithContext(ctx))
	if err != nil {
		return nil, ObjectMeta{}, err
	}
	body, err := s.Bucket.GetObject(full, oss.WithContext(ctx))
	if err != nil {
		return nil, ObjectMeta{}, err
	}
	meta := ObjectMeta{
		ContentType: header.Get(headerContentType),
		ETag:        strings.Trim(header.Get("ETag"), `"`),
	}
	return body, meta, nil
}

// IsNotFound identifica o 404 do OSS (chave inexistente).
func IsNotFound(err error) bool {
	var se oss.ServiceError
	if ok := asServiceError(err, &se); ok {
		return se.StatusCode == http.StatusNotFound
	}
	return false
}

func asServiceError(err error, out *oss.ServiceError) bool {
	se, ok := err.(oss.ServiceError)
	if ok {
		*out = se
	}
	return ok
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(s.fullKey(key), oss.WithContext(ctx))
}

const headerContentType = "Content-Type"
