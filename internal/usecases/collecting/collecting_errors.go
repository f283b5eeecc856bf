package collecting

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable indica que uma origem falhou durante um ciclo de
// coleta (rede, autenticação ou timeout). A falha fica isolada na origem e a
// contribuição dela no ciclo é zero, marcada como zero-por-erro.
var ErrSourceUnavailable = errors.New("revenue source unavailable")

// SourceError carrega a origem que falhou junto do erro base
type SourceError struct {
	Source string
	Err    error
}

// Error implementa a interface error
func (e *SourceError) Error() string {
	return fmt.Sprintf("origem %s: %s", e.Source, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError cria um SourceError encadeado em ErrSourceUnavailable
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{
		Source: source,
		Err:    fmt.Errorf("%w: %s", ErrSourceUnavailable, err.Error()),
	}
}
