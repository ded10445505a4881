package catalogservice

import (
	"context"
	"errors"
	"fmt"

	"gostore/internal/domain"
	apperror "gostore/internal/errors"
	"gostore/internal/pkg/logger"
)

// ProductSource define o contrato que o Serviço espera da fonte externa de produtos.
type ProductSource interface {
	FetchRaw(ctx context.Context) ([]map[string]interface{}, error)
}

// Service carrega, normaliza e filtra o catálogo.
// Cada chamada é uma "ativação" do catálogo: uma busca, sem retry.
type Service struct {
	source ProductSource
	table  CategoryTable
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Catálogo.
func NewService(source ProductSource, table CategoryTable, log logger.Logger) *Service {
	if table == nil {
		table = DefaultCategoryTable()
	}
	return &Service{source: source, table: table, logger: log}
}

// Load busca os registros brutos e devolve produtos normalizados e categorias.
func (s *Service) Load(ctx context.Context) (domain.Catalog, error) {
	raws, err := s.source.FetchRaw(ctx)
	if err != nil {
		s.logger.Error("Falha ao carregar o catálogo.", err)

		var appErr apperror.AppError
		if errors.As(err, &appErr) {
			return domain.Catalog{}, err
		}
		return domain.Catalog{}, apperror.NewUpstreamError("falha ao carregar produtos", 0, err)
	}

	products := NormalizeAll(raws, s.table)
	categories := BuildCategorySet(products)

	s.logger.Debug("Catálogo carregado.", map[string]interface{}{
		"products":   len(products),
		"categories": len(categories),
	})

	return domain.Catalog{Products: products, Categories: categories}, nil
}

// ListProducts devolve o catálogo, filtrado pela categoria quando informada.
func (s *Service) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	catalog, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return catalog.Products, nil
	}
	return FilterByCategory(catalog.Products, category), nil
}

// GetProduct busca um produto pelo ID no catálogo carregado.
func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, apperror.NewValidationError("ID do produto é obrigatório.")
	}

	catalog, err := s.Load(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	for _, p := range catalog.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe no catálogo.", id))
}

// Categories devolve a lista de categorias do catálogo atual.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	catalog, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Categories.Categories(), nil
}
