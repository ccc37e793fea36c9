package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Post("/login/", handler.Login)
	api.Post("/register/", handler.Register)

	api.Get("/dashboard/", handler.AuthRequired, handler.Dashboard)

	tarefas := api.Group("/tarefas", handler.AuthRequired)
	tarefas.Get("/", handler.ListTasks)
	tarefas.Post("/", handler.CreateTask)
	tarefas.Get("/:id/", handler.GetTask)
	tarefas.Put("/:id/", handler.ReplaceTask)
	tarefas.Patch("/:id/", handler.PatchTask)
	tarefas.Delete("/:id/", handler.DeleteTask)
	tarefas.Post("/:id/anexo/", handler.UploadTaskAttachment)

	anotacoes := api.Group("/anotacoes", handler.AuthRequired)
	anotacoes.Get("/", handler.ListAnnotations)
	anotacoes.Post("/", handler.CreateAnnotation)
	anotacoes.Get("/:id/", handler.GetAnnotation)
	anotacoes.Put("/:id/", handler.UpdateAnnotation)
	anotacoes.Patch("/:id/", handler.UpdateAnnotation)
	anotacoes.Delete("/:id/", handler.DeleteAnnotation)

	perfil := api.Group("/perfil", handler.AuthRequired)
	perfil.Get("/", handler.GetProfile)
	perfil.Put("/", handler.UpdateProfile)
	perfil.Patch("/", handler.UpdateProfile)
}
