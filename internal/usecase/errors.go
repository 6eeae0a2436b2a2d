package usecase

// DomainError: violação de regra de negócio (entrada do usuário, estado do quadro).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError: falha de infraestrutura (rede, cache, fila). Nunca é fatal
// para o quadro; vira aviso ao usuário e o estado em memória segue valendo.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

var ErrColunaInvalida = &DomainError{Code: "INVALID_COLUMN", Message: "coluna inexistente na topologia"}
