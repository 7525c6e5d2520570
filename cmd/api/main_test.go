package main

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger lee ./docs/swagger.json al arrancar y entra en
// pánico si no existe; el documento generado tiene que estar commiteado
// para que el binario levante.
func TestSwaggerJSONCommiteadoYServible(t *testing.T) {
	const docPath = "../../docs/swagger.json"

	raw, err := os.ReadFile(docPath)
	require.NoError(t, err, "docs/swagger.json debe existir en el repo")

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Equal(t, "2.0", doc.Swagger)
	require.Contains(t, doc.Paths, "/api/inventory/movements")
	require.Contains(t, doc.Paths, "/api/items")

	app := fiber.New()
	require.NotPanics(t, func() {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: docPath,
			Path:     "docs",
			Title:    "Logistics API",
		}))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/docs", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
