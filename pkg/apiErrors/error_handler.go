package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API do dashboard
const (
	// Erros de validação (VAL)
	ErrInvalidRequest    = "VAL_001" // Requisição inválida
	ErrInvalidDateFormat = "VAL_003" // Formato de data inválido
	ErrInvalidDateRange  = "VAL_004" // Período de datas inválido

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrChartRender    = "SRV_002" // Falha ao renderizar gráfico
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrInvalidDateFormat: http.StatusBadRequest,
	ErrInvalidDateRange:  http.StatusBadRequest,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrChartRender:       http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
