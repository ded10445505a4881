package productrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	apperror "gostore/internal/errors"
	"gostore/internal/pkg/cache"
	"gostore/internal/pkg/logger"
)

// catalogCacheKey é a chave do corpo bruto do catálogo no cache.
const catalogCacheKey = "catalog:raw:%s"

// maxBodyBytes limita o tamanho da resposta da API mock.
const maxBodyBytes = 10 << 20

// errNotAList indica um corpo JSON válido que não é um array.
var errNotAList = errors.New("corpo não é um array JSON")

// ProductRepository busca os registros brutos de produtos na API externa.
// Uma chamada a FetchRaw é uma única requisição GET, sem retry.
type ProductRepository struct {
	URL      string
	Client   *http.Client
	Cache    cache.Client // opcional; nil desativa o cache-aside
	CacheTTL time.Duration
	logger   logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
// cacheClient pode ser nil.
func NewProductRepository(url string, timeout time.Duration, cacheClient cache.Client, cacheTTL time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		URL:      url,
		Client:   &http.Client{Timeout: timeout},
		Cache:    cacheClient,
		CacheTTL: cacheTTL,
		logger:   log,
	}
}

func (r *ProductRepository) cacheEnabled() bool {
	return r.Cache != nil && r.CacheTTL > 0
}

// FetchRaw devolve os registros brutos do catálogo, usando a estratégia Cache-Aside
// quando o cache está habilitado.
func (r *ProductRepository) FetchRaw(ctx context.Context) ([]map[string]interface{}, error) {
	key := fmt.Sprintf(catalogCacheKey, r.URL)

	// --- 1. Cache-Aside (READ) ---
	if r.cacheEnabled() {
		cached, err := r.Cache.Get(ctx, key)
		if err == nil {
			if raws, decodeErr := decodeRecords([]byte(cached)); decodeErr == nil {
				r.logger.Debug("Catálogo servido do cache.", map[string]interface{}{"products": len(raws)})
				return raws, nil
			}
			// Conteúdo corrompido no cache: segue para a fonte.
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn("Falha ao ler o catálogo do cache.", map[string]interface{}{"error": err.Error()})
		}
	}

	// --- 2. Busca na Fonte Externa ---
	body, err := r.fetchBody(ctx)
	if err != nil {
		return nil, err
	}

	raws, err := decodeRecords(body)
	if errors.Is(err, errNotAList) {
		return nil, apperror.NewUpstreamError("resposta não é uma lista", 0, err)
	}
	if err != nil {
		return nil, apperror.NewUpstreamError("resposta ilegível", 0, err)
	}

	// --- 3. Cache-Aside (WRITE) ---
	if r.cacheEnabled() {
		if err := r.Cache.Set(ctx, key, body, r.CacheTTL); err != nil {
			r.logger.Warn("Falha ao gravar o catálogo no cache.", map[string]interface{}{"error": err.Error()})
		}
	}

	r.logger.Debug("Catálogo obtido da fonte externa.", map[string]interface{}{"products": len(raws), "url": r.URL})
	return raws, nil
}

func (r *ProductRepository) fetchBody(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return nil, apperror.NewInternalError("URL do catálogo inválida", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, apperror.NewUpstreamError("falha de rede", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, apperror.NewUpstreamError("status inesperado", resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, apperror.NewUpstreamError("falha ao ler a resposta", resp.StatusCode, err)
	}
	return body, nil
}

// decodeRecords decodifica o corpo JSON. Um corpo que não é array devolve
// errNotAList; itens que não são objetos são ignorados.
func decodeRecords(body []byte) ([]map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload interface{}
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}

	items, ok := payload.([]interface{})
	if !ok {
		return nil, errNotAList
	}

	raws := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if record, ok := item.(map[string]interface{}); ok {
			raws = append(raws, record)
		}
	}
	return raws, nil
}
