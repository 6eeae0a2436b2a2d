package usecase

import "github.com/imobsites/crm-board/internal/entity"

// MoveInput descreve um gesto de arrastar-e-soltar concluído.
type MoveInput struct {
	LeadID       string          `json:"leadId"`
	Origem       entity.ColumnID `json:"origem"`
	OrigemIndex  int             `json:"origemIndex"`
	Destino      entity.ColumnID `json:"destino"`
	DestinoIndex int             `json:"destinoIndex"`

	// Soltou fora de qualquer coluna (gesto cancelado).
	SemDestino bool `json:"semDestino,omitempty"`
}

// LeadPayload é o formato cru que a API de clientes devolve.
// Datas chegam como strings ISO e são convertidas na fronteira.
type LeadPayload struct {
	ID                  string `json:"id"`
	Nome                string `json:"nome"`
	Email               string `json:"email"`
	Telefone            string `json:"telefone"`
	Cidade              string `json:"cidade"`
	Bairro              string `json:"bairro"`
	StatusLead          string `json:"statusLead"`
	TipoLead            string `json:"tipoLead"`
	OrigemLead          string `json:"origemLead"`
	Temperatura         int    `json:"temperatura"`
	CorretorResponsavel string `json:"corretorResponsavel"`
	Visualizacoes       int    `json:"visualizacoes"`
	Mensagens           int    `json:"mensagens"`
	Agendamentos        int    `json:"agendamentos"`
	UltimoContato       string `json:"ultimoContato,omitempty"`
	ProximoContato      string `json:"proximoContato,omitempty"`
	Prazo               string `json:"prazo,omitempty"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}
