package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

// Ferramenta de desenvolvimento: popula o serviço de clientes com leads
// de demonstração para exercitar o quadro localmente.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	baseURL := os.Getenv("CLIENTES_API_URL")
	if baseURL == "" {
		log.Fatal("❌ CLIENTES_API_URL deve estar configurado no .env")
	}

	demos := []map[string]any{
		{
			"nome": "Maria Souza", "email": "maria.souza@email.com", "telefone": "(61) 99876-1020",
			"cidade": "Brasília", "bairro": "Asa Norte",
			"statusLead": "NOVO", "tipoLead": "COMPRADOR", "origemLead": "SITE", "temperatura": 4,
		},
		{
			"nome": "Carlos Pereira", "email": "carlos.p@email.com", "telefone": "(61) 99765-3344",
			"cidade": "Brasília", "bairro": "Águas Claras",
			"statusLead": "CONTATO", "tipoLead": "LOCATÁRIO", "origemLead": "INSTAGRAM", "temperatura": 3,
			"corretorResponsavel": "Ana Lima",
		},
		{
			"nome": "Fernanda Alves", "email": "fe.alves@email.com", "telefone": "(61) 98123-5566",
			"cidade": "Brasília", "bairro": "Lago Sul",
			"statusLead": "PROPOSTA", "tipoLead": "COMPRADOR", "origemLead": "INDICAÇÃO", "temperatura": 5,
			"corretorResponsavel": "Ana Lima",
		},
	}

	fmt.Printf("🔄 Enviando %d leads de demonstração para %s...\n", len(demos), baseURL)

	for _, demo := range demos {
		body, _ := json.Marshal(demo)
		resp, err := http.Post(baseURL+"/api/clientes/novo", "application/json", bytes.NewBuffer(body))
		if err != nil {
			log.Fatalf("❌ Falha ao enviar lead %q: %v", demo["nome"], err)
		}
		resp.Body.Close()
		fmt.Printf("   ✅ %s (%s)\n", demo["nome"], demo["statusLead"])
	}

	fmt.Println("🏁 Pronto. Abra o quadro e confira as colunas.")
}
