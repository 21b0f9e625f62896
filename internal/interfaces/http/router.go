package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/calculadora-promedio/internal/application/auth"
	"github.com/jhoicas/calculadora-promedio/internal/application/usecase"
	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CalculationUC *usecase.CalculationUseCase
	InputUC       *usecase.InputUseCase
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Calculador (público): vista previa, saneamiento de campos y tema
	calcHandler := NewCalculationHandler(deps.CalculationUC)
	api.Post("/calculations/preview", calcHandler.Preview)

	inputHandler := NewInputHandler(deps.InputUC)
	api.Post("/inputs/sanitize", inputHandler.Sanitize)
	api.Post("/inputs/filter", inputHandler.Filter)

	api.Get("/theme/:mode", GetTheme)

	// Cálculos guardados (requieren Bearer Token). Se registra después de /calculations/preview:
	// Fiber recorre la pila en orden y el preview responde antes de llegar al middleware del grupo.
	calcs := api.Group("/calculations",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleUser, entity.RoleAdmin),
	)
	calcs.Post("/", calcHandler.Create)
	calcs.Get("/", calcHandler.List)
	calcs.Get("/export.xml", calcHandler.ExportXML)
	calcs.Get("/:id", calcHandler.GetByID)
	calcs.Delete("/:id", calcHandler.Delete)
	calcs.Get("/:id/pdf", calcHandler.PDF)

	users := api.Group("/users", AuthMiddleware(deps.JWTSecret))
	users.Get("/me", NewUserHandler(deps.UserUC).Me)
}
