package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"go-warehouse-inventory/internal/apperror"
	"go-warehouse-inventory/internal/model"
	"go-warehouse-inventory/internal/repository"
	"go-warehouse-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalogService returns canned results per method.
type stubCatalogService struct {
	product    *model.Product
	products   []model.Product
	balance    int64
	createErr  error
	updateErr  error
	getErr     error
	balanceErr error
}

func (s *stubCatalogService) CreateProduct(req *service.CreateProductRequest, userID string) (*model.Product, error) {
	return s.product, s.createErr
}

func (s *stubCatalogService) UpdateProduct(id uuid.UUID, req *service.UpdateProductRequest, userID string) (*model.Product, error) {
	return s.product, s.updateErr
}

func (s *stubCatalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	return s.product, s.getErr
}

func (s *stubCatalogService) GetProducts(filter repository.ProductFilter) ([]model.Product, error) {
	return s.products, nil
}

func (s *stubCatalogService) GetBalance(productID uuid.UUID) (int64, error) {
	return s.balance, s.balanceErr
}

func newCatalogApp(svc service.CatalogService) *fiber.App {
	app := fiber.New()
	h := NewCatalogHandler(svc)
	app.Get("/products", h.GetProducts)
	app.Get("/products/:id", h.GetProduct)
	app.Get("/products/:id/current-stock", h.GetProductStock)
	app.Post("/products", h.CreateProduct)
	app.Put("/products/:id", h.UpdateProduct)
	return app
}

func postJSON(app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		return 0, nil
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	json.Unmarshal(raw, &parsed)
	return resp.StatusCode, parsed
}

func TestCreateProduct_Returns201(t *testing.T) {
	product := &model.Product{Name: "Widget", SKU: "ABC-1"}
	product.ID = uuid.New()
	app := newCatalogApp(&stubCatalogService{product: product})

	status, body := postJSON(app, "/products", fiber.Map{"name": "Widget", "sku": "abc-1"})

	assert.Equal(t, 201, status)
	assert.Equal(t, "Product created", body["message"])
}

func TestCreateProduct_ValidationErrorReturns400(t *testing.T) {
	app := newCatalogApp(&stubCatalogService{createErr: apperror.DuplicateSku("ABC-1")})

	status, body := postJSON(app, "/products", fiber.Map{"name": "Widget", "sku": "ABC-1"})

	assert.Equal(t, 400, status)
	assert.Equal(t, string(apperror.KindDuplicateSku), body["kind"])
	assert.Equal(t, "sku", body["field"])
}

func TestGetProduct_NotFoundReturns404(t *testing.T) {
	app := newCatalogApp(&stubCatalogService{getErr: apperror.NotFound("Product")})

	req := httptest.NewRequest("GET", "/products/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)
}

func TestGetProduct_BadIDReturns400(t *testing.T) {
	app := newCatalogApp(&stubCatalogService{})

	req := httptest.NewRequest("GET", "/products/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
}

func TestGetProductStock_ReturnsDerivedBalance(t *testing.T) {
	product := &model.Product{Name: "Widget", SKU: "ABC-1"}
	product.ID = uuid.New()
	app := newCatalogApp(&stubCatalogService{product: product, balance: 7})

	req := httptest.NewRequest("GET", "/products/"+product.ID.String()+"/current-stock", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(7), body["current_stock"])
	assert.Equal(t, "Widget", body["product_name"])
}
