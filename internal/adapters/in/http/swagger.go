package http

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RegisterSwagger serves the OpenAPI document and swagger UI under /swagger/*.
// The document is registered with swag once per process.
func RegisterSwagger(e *echo.Echo, swagger *openapi3.T) error {
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal OpenAPI document: %w", err)
	}

	if swag.GetSwagger(swag.Name) != nil {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
		return nil
	}

	swag.Register(swag.Name, &swag.Spec{
		Version:          swagger.Info.Version,
		Title:            swagger.Info.Title,
		Description:      swagger.Info.Description,
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  string(doc),
		LeftDelim:        "{{",
		RightDelim:       "}}",
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
