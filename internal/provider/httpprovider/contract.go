package httpprovider

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	contractPath      = "/questions"
	contractMediaType = "application/json"
)

//go:embed contract.yaml
var contractYAML []byte

var (
	contractOnce   sync.Once
	contractSchema *openapi3.Schema
	contractErr    error
)

// responseSchema returns the 200 response schema of GET /questions from the
// embedded OpenAPI contract.
func responseSchema() (*openapi3.Schema, error) {
	contractOnce.Do(func() {
		contractSchema, contractErr = loadResponseSchema(context.Background(), contractYAML)
	})
	return contractSchema, contractErr
}

func loadResponseSchema(ctx context.Context, raw []byte) (*openapi3.Schema, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("httpprovider: load contract: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("httpprovider: validate contract: %w", err)
	}
	if doc.Paths == nil {
		return nil, errors.New("httpprovider: contract has no paths")
	}

	item := doc.Paths.Value(contractPath)
	if item == nil || item.Get == nil {
		return nil, fmt.Errorf("httpprovider: contract is missing GET %s", contractPath)
	}
	if item.Get.Responses == nil {
		return nil, fmt.Errorf("httpprovider: contract GET %s has no responses", contractPath)
	}

	ref := item.Get.Responses.Status(http.StatusOK)
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("httpprovider: contract GET %s has no 200 response", contractPath)
	}
	media := ref.Value.Content.Get(contractMediaType)
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("httpprovider: contract GET %s has no %s schema", contractPath, contractMediaType)
	}
	return media.Schema.Value, nil
}
