package entity

// ColumnID identifica uma das 4 colunas visíveis do kanban.
// O valor coincide com o StatusLead direto correspondente.
type ColumnID string

const (
	ColunaNovo        ColumnID = "NOVO"
	ColunaContato     ColumnID = "CONTATO"
	ColunaInteressado ColumnID = "INTERESSADO"
	ColunaVisita      ColumnID = "VISITA"
)

// Column é um estágio visual fixo do quadro. O conjunto de colunas
// não depende dos dados.
type Column struct {
	ID     ColumnID `json:"id"`
	Titulo string   `json:"titulo"`
	Icone  string   `json:"icone"`
	Cor    string   `json:"cor"`
}

// Topology retorna as 4 colunas na ordem de exibição.
func Topology() []Column {
	return []Column{
		{ID: ColunaNovo, Titulo: "Novos Leads", Icone: "sparkles", Cor: "#3b82f6"},
		{ID: ColunaContato, Titulo: "Em Contato", Icone: "phone", Cor: "#f59e0b"},
		{ID: ColunaInteressado, Titulo: "Interessados", Icone: "heart", Cor: "#8b5cf6"},
		{ID: ColunaVisita, Titulo: "Visita Agendada", Icone: "calendar", Cor: "#10b981"},
	}
}

// ColumnIDs retorna só os identificadores, na mesma ordem da topologia.
func ColumnIDs() []ColumnID {
	return []ColumnID{ColunaNovo, ColunaContato, ColunaInteressado, ColunaVisita}
}

func (c ColumnID) Valid() bool {
	switch c {
	case ColunaNovo, ColunaContato, ColunaInteressado, ColunaVisita:
		return true
	}
	return false
}

// Status devolve o StatusLead equivalente à coluna. Só os 4 status
// diretos são alcançáveis por arrasto, então o mapeamento é 1:1.
func (c ColumnID) Status() StatusLead {
	return StatusLead(c)
}

// ResolveColumn mapeia qualquer status (inclusive vazio ou desconhecido)
// para exatamente uma coluna. Função total: nunca falha.
//
// PROPOSTA/CONTRATO/FECHADO continuam visíveis em INTERESSADO;
// PERDIDO volta para NOVO (comportamento de produto confirmado).
func ResolveColumn(status StatusLead) ColumnID {
	switch status {
	case StatusNovo, StatusContato, StatusInteressado, StatusVisita:
		return ColumnID(status)
	case StatusProposta, StatusContrato, StatusFechado:
		return ColunaInteressado
	case StatusPerdido:
		return ColunaNovo
	default:
		return ColunaNovo
	}
}
