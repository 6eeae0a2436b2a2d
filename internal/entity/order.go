package entity

// ColumnOrder guarda, por coluna, a sequência manual de IDs de lead.
// Representa só arranjo visual; o status do lead é autoridade de coluna.
type ColumnOrder map[ColumnID][]string

// NewColumnOrder cria um mapa com as 4 colunas vazias.
func NewColumnOrder() ColumnOrder {
	order := make(ColumnOrder, len(ColumnIDs()))
	for _, col := range ColumnIDs() {
		order[col] = []string{}
	}
	return order
}

// Clone copia o mapa e as fatias. Mutação segura sem aliasing.
func (o ColumnOrder) Clone() ColumnOrder {
	clone := make(ColumnOrder, len(o))
	for col, ids := range o {
		clone[col] = append([]string{}, ids...)
	}
	return clone
}

// Contains informa se o ID aparece na sequência da coluna.
func (o ColumnOrder) Contains(col ColumnID, id string) bool {
	for _, v := range o[col] {
		if v == id {
			return true
		}
	}
	return false
}

// ColumnEqual compara a sequência de uma única coluna.
func (o ColumnOrder) ColumnEqual(other ColumnOrder, col ColumnID) bool {
	a, b := o[col], other[col]
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Equal compara todas as colunas da topologia.
func (o ColumnOrder) Equal(other ColumnOrder) bool {
	for _, col := range ColumnIDs() {
		if !o.ColumnEqual(other, col) {
			return false
		}
	}
	return true
}

// Empty informa se nenhuma coluna tem IDs registrados.
func (o ColumnOrder) Empty() bool {
	for _, ids := range o {
		if len(ids) > 0 {
			return false
		}
	}
	return true
}
