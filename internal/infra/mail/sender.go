package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/imobsites/crm-board/internal/entity"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendVisitAlert avisa a caixa dos corretores que um lead entrou em
// VISITA pelo quadro.
func (s *EmailSender) SendVisitAlert(to string, lead entity.Lead) error {
	data := VisitAlertData{
		Corretor:    lead.CorretorResponsavel,
		LeadNome:    lead.Nome,
		LeadEmail:   lead.Email,
		Telefone:    lead.Telefone,
		Cidade:      lead.Cidade,
		Temperatura: lead.Temperatura,
	}

	tmplPath := filepath.Join("templates", "visita.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@imobsites.com.br")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("📅 Visita a agendar: %s", lead.Nome))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
