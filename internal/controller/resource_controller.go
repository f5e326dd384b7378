package controller

import (
	"mind-nest-be/internal/pkg/serverutils"
	"mind-nest-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResourceController interface {
	RegisterRoutes(r fiber.Router)
	GetResources(ctx *fiber.Ctx) error
}

type resourceController struct {
	service service.IResourceService
}

func NewResourceController(service service.IResourceService) IResourceController {
	return &resourceController{service: service}
}

func (c *resourceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/resources/v1")
	h.Get("", c.GetResources)
}

func (c *resourceController) GetResources(ctx *fiber.Ctx) error {
	res, err := c.service.GetResources(ctx.UserContext(), ctx.Query("language", "en"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get crisis resources", res))
}
