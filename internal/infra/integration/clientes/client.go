package clientes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/imobsites/crm-board/internal/entity"
	"github.com/imobsites/crm-board/internal/usecase"
)

// Client fala com o serviço de clientes do painel (GET/POST /api/clientes).
// O serviço é um colaborador externo: o payload é tratado como não
// confiável e passa pelo parse tipado da fronteira.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchLeads busca a coleção de leads e converte para o modelo tipado.
func (c *Client) FetchLeads(ctx context.Context) ([]entity.Lead, error) {
	url := fmt.Sprintf("%s/api/clientes", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request clientes: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao listar clientes: %d - %s", resp.StatusCode, string(body))
	}

	var out listResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("resposta ilegível do serviço de clientes: %w", err)
	}

	if !out.Success {
		return nil, fmt.Errorf("serviço de clientes recusou a listagem: %s", out.Error)
	}

	return usecase.ParseLeads(out.Data), nil
}

// SaveOrder persiste a ordenação manual no endpoint remoto.
func (c *Client) SaveOrder(ctx context.Context, order entity.ColumnOrder) error {
	url := fmt.Sprintf("%s/api/clientes", c.baseURL)

	jsonBody, err := json.Marshal(saveOrderRequest{Order: order})
	if err != nil {
		return fmt.Errorf("erro ao serializar ordenação: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request clientes: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("erro ao persistir ordenação: %d - %s", resp.StatusCode, string(body))
	}

	var out saveOrderResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("resposta ilegível do serviço de clientes: %w", err)
	}

	if !out.Success {
		return fmt.Errorf("serviço de clientes recusou a ordenação: %s", out.Error)
	}

	return nil
}
