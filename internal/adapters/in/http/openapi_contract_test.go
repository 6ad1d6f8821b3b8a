package http_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	httpin "agritrace/internal/adapters/in/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const openAPIPath = "../../../../api/openapi.yml"

func loadDocument(t *testing.T) *openapi3.T {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(openAPIPath)
	require.NoError(t, err)

	return doc
}

func registeredRoutes() []*echo.Route {
	e := echo.New()
	server := httpin.NewServer(httpin.ServerHandlers{}, nil)
	server.RegisterRoutes(e)

	return e.Routes()
}

// echoPathToOpenAPI rewrites echo's :param segments into the {param} form
// the document uses.
func echoPathToOpenAPI(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}

	return strings.Join(segments, "/")
}

func TestOpenAPIDocumentIsValid(t *testing.T) {
	doc := loadDocument(t)

	err := doc.Validate(context.Background())
	require.NoError(t, err)
}

func TestEveryRouteIsDocumented(t *testing.T) {
	doc := loadDocument(t)

	for _, route := range registeredRoutes() {
		path := echoPathToOpenAPI(route.Path)

		pathItem := doc.Paths.Find(path)
		require.NotNilf(t, pathItem, "route %s %s is missing from the document", route.Method, route.Path)

		operation := pathItem.GetOperation(route.Method)
		require.NotNilf(t, operation, "route %s %s has no %s operation in the document", route.Method, route.Path, route.Method)
	}
}

func TestEveryDocumentedOperationIsRouted(t *testing.T) {
	doc := loadDocument(t)

	routed := make(map[string]bool)
	for _, route := range registeredRoutes() {
		routed[route.Method+" "+echoPathToOpenAPI(route.Path)] = true
	}

	for path, pathItem := range doc.Paths.Map() {
		for method := range pathItem.Operations() {
			key := fmt.Sprintf("%s %s", method, path)
			require.Truef(t, routed[key], "documented operation %s has no registered route", key)
		}
	}
}
