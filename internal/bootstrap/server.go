package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	appemployee "github.com/rafaelmp/employee-import/internal/application/employee"
	appmanager "github.com/rafaelmp/employee-import/internal/application/manager"
	infrafile "github.com/rafaelmp/employee-import/internal/infrastructure/file"
	"github.com/rafaelmp/employee-import/internal/infrastructure/repository"
	httpecho "github.com/rafaelmp/employee-import/internal/interfaces/http/echo"
	"gorm.io/gorm"
)

func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, uploads *infrafile.LocalSource) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("3M"))

	managerRepo := repository.NewManagerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	employeeWriteRepo := repository.NewEmployeeImportRepository(pool)
	importJobRepo := repository.NewImportJobRepository(db)

	authHandler := httpecho.NewAuthHandler(
		appmanager.NewRegisterManager(managerRepo),
		appmanager.NewLoginManager(managerRepo),
		appmanager.NewLogoutManager(managerRepo),
	)
	employeeHandler := httpecho.NewEmployeeHandler(
		appemployee.NewListEmployees(employeeRepo),
		appemployee.NewGetEmployee(employeeRepo),
		appemployee.NewCreateEmployee(employeeWriteRepo),
		appemployee.NewUpdateEmployee(employeeRepo),
		appemployee.NewDeleteEmployee(employeeRepo),
	)
	importHandler := httpecho.NewImportHandler(
		appemployee.NewStartImport(importJobRepo),
		uploads,
	)

	httpecho.RegisterRoutes(server, authHandler, employeeHandler, importHandler, httpecho.RequireAuth(managerRepo))

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
