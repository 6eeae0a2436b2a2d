package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// StatusLead enumera os 8 estágios possíveis de um lead no funil de vendas.
type StatusLead string

const (
	StatusNovo        StatusLead = "NOVO"
	StatusContato     StatusLead = "CONTATO"
	StatusInteressado StatusLead = "INTERESSADO"
	StatusVisita      StatusLead = "VISITA"
	StatusProposta    StatusLead = "PROPOSTA"
	StatusContrato    StatusLead = "CONTRATO"
	StatusFechado     StatusLead = "FECHADO"
	StatusPerdido     StatusLead = "PERDIDO"
)

// AllStatuses lista os 8 status na ordem do funil.
var AllStatuses = []StatusLead{
	StatusNovo, StatusContato, StatusInteressado, StatusVisita,
	StatusProposta, StatusContrato, StatusFechado, StatusPerdido,
}

func (s StatusLead) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Entidade: Lead
type Lead struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Cidade   string `json:"cidade,omitempty"`
	Bairro   string `json:"bairro,omitempty"`

	// Campos do funil
	StatusLead          StatusLead `json:"statusLead"`
	TipoLead            string     `json:"tipoLead,omitempty"`
	OrigemLead          string     `json:"origemLead,omitempty"`
	Temperatura         int        `json:"temperatura"` // 1 (frio) a 5 (quente)
	CorretorResponsavel string     `json:"corretorResponsavel,omitempty"`

	// Métricas (somente exibição)
	Visualizacoes int `json:"visualizacoes"`
	Mensagens     int `json:"mensagens"`
	Agendamentos  int `json:"agendamentos"`

	UltimoContato  *time.Time `json:"ultimoContato,omitempty"`
	ProximoContato *time.Time `json:"proximoContato,omitempty"`
	Prazo          *time.Time `json:"prazo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Factory
func NewLead(nome, email, telefone string) (*Lead, error) {
	lead := &Lead{
		ID:          uuid.New().String(),
		Nome:        nome,
		Email:       email,
		Telefone:    telefone,
		StatusLead:  StatusNovo,
		Temperatura: 3,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.ID == "" {
		return errors.New("id is required")
	}
	if l.Nome == "" {
		return errors.New("nome is required")
	}
	if l.Temperatura < 1 || l.Temperatura > 5 {
		return errors.New("temperatura must be between 1 and 5")
	}
	return nil
}
