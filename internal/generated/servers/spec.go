package servers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiDocument []byte

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed OpenAPI document served by RegisterHandlers.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		swaggerDoc, swaggerErr = loader.LoadFromData(openapiDocument)
		if swaggerErr != nil {
			swaggerErr = fmt.Errorf("error loading openapi document: %w", swaggerErr)
		}
	})
	return swaggerDoc, swaggerErr
}

type swaggerSpec struct{}

// ReadDoc renders the document as JSON for the swagger UI.
func (swaggerSpec) ReadDoc() string {
	doc, err := GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, swaggerSpec{})
}
