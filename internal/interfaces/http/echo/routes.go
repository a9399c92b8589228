package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(
	server *e.Echo,
	auth *AuthHandler,
	employees *EmployeeHandler,
	imports *ImportHandler,
	requireAuth e.MiddlewareFunc,
) {
	api := server.Group("/api/v1")

	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)

	protected := api.Group("", requireAuth)
	protected.POST("/auth/logout", auth.Logout)
	protected.GET("/auth/me", auth.Me)

	protected.GET("/employees", employees.List)
	protected.GET("/employees/:id", employees.Get)
	protected.POST("/employees", employees.Create)
	protected.PUT("/employees/:id", employees.Update)
	protected.DELETE("/employees/:id", employees.Delete)
	protected.POST("/employees/import", imports.UploadCSV)
}
