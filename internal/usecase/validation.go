package usecase

import (
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/imobsites/crm-board/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateMoveInput rejeita gestos malformados antes de tocar no estado.
// Um gesto sem destino NÃO é erro: é um no-op tratado adiante.
func ValidateMoveInput(input MoveInput) []ValidationError {
	var errors []ValidationError

	if input.SemDestino {
		return nil
	}

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"leadId", "is required"})
	}
	if !input.Origem.Valid() {
		errors = append(errors, ValidationError{"origem", "must be one of the 4 board columns"})
	}
	if !input.Destino.Valid() {
		errors = append(errors, ValidationError{"destino", "must be one of the 4 board columns"})
	}
	if input.OrigemIndex < 0 {
		errors = append(errors, ValidationError{"origemIndex", "must not be negative"})
	}
	if input.DestinoIndex < 0 {
		errors = append(errors, ValidationError{"destinoIndex", "must not be negative"})
	}

	return errors
}

// ParseLeads converte os payloads crus da API em leads tipados.
// A API é tratada como não confiável: registros sem ID são descartados,
// IDs duplicados ficam com a primeira ocorrência, temperatura fora de
// 1..5 é normalizada e datas ilegíveis viram nulas. Tudo com diagnóstico
// no log; nada disso derruba a carga.
func ParseLeads(payloads []LeadPayload) []entity.Lead {
	leads := make([]entity.Lead, 0, len(payloads))
	seen := make(map[string]bool, len(payloads))

	for _, p := range payloads {
		if strings.TrimSpace(p.ID) == "" {
			log.Printf("⚠️ [PARSE] Lead sem ID descartado (nome=%q)", p.Nome)
			continue
		}
		if seen[p.ID] {
			log.Printf("⚠️ [PARSE] Lead com ID duplicado descartado: %s", p.ID)
			continue
		}
		seen[p.ID] = true

		lead := entity.Lead{
			ID:                  p.ID,
			Nome:                p.Nome,
			Telefone:            p.Telefone,
			Cidade:              p.Cidade,
			Bairro:              p.Bairro,
			StatusLead:          entity.StatusLead(p.StatusLead),
			TipoLead:            p.TipoLead,
			OrigemLead:          p.OrigemLead,
			Temperatura:         clampTemperatura(p.Temperatura),
			CorretorResponsavel: p.CorretorResponsavel,
			Visualizacoes:       p.Visualizacoes,
			Mensagens:           p.Mensagens,
			Agendamentos:        p.Agendamentos,
			UltimoContato:       parseAPIDate(p.UltimoContato),
			ProximoContato:      parseAPIDate(p.ProximoContato),
			Prazo:               parseAPIDate(p.Prazo),
		}

		if p.Email != "" {
			if _, err := mail.ParseAddress(p.Email); err != nil {
				log.Printf("⚠️ [PARSE] Email inválido ignorado no lead %s: %q", p.ID, p.Email)
			} else {
				lead.Email = p.Email
			}
		}

		// Status desconhecido passa adiante: o mapeador de colunas já
		// tem fallback para NOVO e precisa ser a única autoridade disso.
		if p.StatusLead != "" && !lead.StatusLead.Valid() {
			log.Printf("⚠️ [PARSE] Status desconhecido no lead %s: %q", p.ID, p.StatusLead)
		}

		if t := parseAPIDate(p.CreatedAt); t != nil {
			lead.CreatedAt = *t
		}
		if t := parseAPIDate(p.UpdatedAt); t != nil {
			lead.UpdatedAt = *t
		}

		leads = append(leads, lead)
	}

	return leads
}

func clampTemperatura(t int) int {
	if t < 1 {
		return 1
	}
	if t > 5 {
		return 5
	}
	return t
}

func parseAPIDate(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	log.Printf("⚠️ [PARSE] Data ilegível ignorada: %q", s)
	return nil
}
