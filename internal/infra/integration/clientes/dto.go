package clientes

import (
	"github.com/imobsites/crm-board/internal/entity"
	"github.com/imobsites/crm-board/internal/usecase"
)

// Envelope de GET /api/clientes.
type listResponse struct {
	Success bool                  `json:"success"`
	Data    []usecase.LeadPayload `json:"data"`
	Error   string                `json:"error,omitempty"`
}

// Corpo de POST /api/clientes (persistência da ordenação).
type saveOrderRequest struct {
	Order entity.ColumnOrder `json:"order"`
}

type saveOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
