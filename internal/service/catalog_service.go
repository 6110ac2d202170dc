package service

import (
	"errors"
	"regexp"
	"strings"

	"go-warehouse-inventory/internal/apperror"
	"go-warehouse-inventory/internal/model"
	"go-warehouse-inventory/internal/repository"
	"go-warehouse-inventory/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProductRequest carries user-supplied catalog fields. Name and
// SKU are normalized before validation.
type CreateProductRequest struct {
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
}

// UpdateProductRequest updates only the fields that are present.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	SKU         *string `json:"sku"`
	Description *string `json:"description"`
}

type CatalogService interface {
	CreateProduct(req *CreateProductRequest, userID string) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest, userID string) (*model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	GetProducts(filter repository.ProductFilter) ([]model.Product, error)
	GetBalance(productID uuid.UUID) (int64, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	ledgerRepo  repository.LedgerRepository
	wsHub       *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, lRepo repository.LedgerRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		ledgerRepo:  lRepo,
		wsHub:       hub,
	}
}

var skuPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

// normalizeSKU uppercases and trims; normalization is idempotent so
// "abc-1" and "ABC-1" collide on the same stored value.
func normalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return "", apperror.InvalidName("Product name must be at least 2 characters long.")
	}
	return name, nil
}

func validateSKU(sku string) (string, error) {
	sku = normalizeSKU(sku)
	if !skuPattern.MatchString(sku) {
		return "", apperror.InvalidSku("SKU can only contain uppercase letters, numbers, and hyphens.")
	}
	if len(sku) < 3 {
		return "", apperror.InvalidSku("SKU must be at least 3 characters long.")
	}
	return sku, nil
}

func (s *catalogService) CreateProduct(req *CreateProductRequest, userID string) (*model.Product, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}

	sku, err := validateSKU(req.SKU)
	if err != nil {
		return nil, err
	}

	// Duplicate check on the normalized value
	exists, err := s.productRepo.SKUExists(sku, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.DuplicateSku(sku)
	}

	product := &model.Product{
		Name:        name,
		SKU:         sku,
		Description: strings.TrimSpace(req.Description),
	}
	product.CreatedBy = userID
	product.UpdatedBy = userID

	if err := s.productRepo.Create(product); err != nil {
		// The unique index may beat the pre-check under concurrent
		// creation; the loser still gets a duplicate-SKU error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.DuplicateSku(sku)
		}
		return nil, err
	}

	s.wsHub.PublishJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_created",
		"product": map[string]interface{}{
			"id":   product.ID,
			"sku":  product.SKU,
			"name": product.Name,
		},
	})

	return product, nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest, userID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Product")
		}
		return nil, err
	}

	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return nil, err
		}
		product.Name = name
	}

	if req.SKU != nil {
		sku, err := validateSKU(*req.SKU)
		if err != nil {
			return nil, err
		}
		// Uniqueness check must exclude the product's own row
		exists, err := s.productRepo.SKUExists(sku, product.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperror.DuplicateSku(sku)
		}
		product.SKU = sku
	}

	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}

	product.UpdatedBy = userID

	if err := s.productRepo.Update(product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.DuplicateSku(product.SKU)
		}
		return nil, err
	}

	s.wsHub.PublishJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_updated",
		"product": map[string]interface{}{
			"id":   product.ID,
			"sku":  product.SKU,
			"name": product.Name,
		},
	})

	return product, nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Product")
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) GetProducts(filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindAll(filter)
}

// GetBalance delegates to the ledger's balance computation.
func (s *catalogService) GetBalance(productID uuid.UUID) (int64, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperror.NotFound("Product")
		}
		return 0, err
	}
	return s.ledgerRepo.BalanceOf(nil, productID)
}
