package route

import (
	"github.com/gofiber/fiber/v2"

	filectrl "github.com/profandreluis/MCFACIL/internals/features/files/controller"
	ossHelper "github.com/profandreluis/MCFACIL/internals/helpers/oss"
)

func FileRoutes(api fiber.Router, ossSvc *ossHelper.OSSService) {
	handler := &filectrl.FileController{OSS: ossSvc}

	api.Get("/files/*", handler.GetFile)
}
