package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	helper "github.com/profandreluis/MCFACIL/internals/helpers"
	ossHelper "github.com/profandreluis/MCFACIL/internals/helpers/oss"
)

type FileController struct {
	OSS *ossHelper.OSSService
}

// GET /api/files/*
//
// Repassa o blob preservando o content-type, com ETag para requisições
// condicionais e cache longo (a chave do perfil é estável).
func (h *FileController) GetFile(c *fiber.Ctx) error {
	if h.OSS == nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Blob store não configurado")
	}

	key := c.Params("*")
	if key == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chave vazia")
	}

	body, meta, err := h.OSS.GetObject(c.UserContext(), key)
	if err != nil {
		if ossHelper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Arquivo não encontrado")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Falha ao buscar arquivo")
	}
	defer body.Close()

	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000")
	if meta.ETag != "" {
		c.Set(fiber.HeaderETag, `"`+meta.ETag+`"`)
		// requisição condicional: 304 sem corpo
		if inm := c.Get(fiber.HeaderIfNoneMatch); inm == `"`+meta.ETag+`"` || inm == meta.ETag {
			return c.SendStatus(fiber.StatusNotModified)
		}
	}
	if meta.ContentType != "" {
		c.Set(fiber.HeaderContentType, meta.ContentType)
	}

	// fotos têm no máximo 5 MiB: ler em memória é aceitável e evita
	// segurar a conexão com o OSS durante o envio
	data, err := io.ReadAll(body)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Falha ao ler arquivo")
	}
	return c.Send(data)
}
