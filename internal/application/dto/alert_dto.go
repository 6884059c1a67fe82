package dto

// AlertOutcomeResponse desfecho de uma tentativa de envio de alerta.
type AlertOutcomeResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"` // sent | failed
	Reason       string `json:"reason,omitempty"`
}

// AlertBatchResponse resultado de um "enviar todos": desfechos independentes
// por cliente.
type AlertBatchResponse struct {
	Outcomes []AlertOutcomeResponse `json:"outcomes"`
	Sent     int                    `json:"sent"`
	Failed   int                    `json:"failed"`
}
