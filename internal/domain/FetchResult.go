package domain

import "time"

// FetchStatus classifica o resultado da busca nas origens de dados
type FetchStatus string

const (
	FetchOK       FetchStatus = "ok"
	FetchDegraded FetchStatus = "degraded"
	FetchEmpty    FetchStatus = "empty"
)

// FetchResult representa Ok(dados), Degraded(dados parciais, causa) ou Empty
type FetchResult struct {
	Status    FetchStatus
	Data      *SourceData
	Cause     error
	FetchedAt time.Time
}

// FetchOk cria um resultado completo
func FetchOk(data *SourceData) FetchResult {
	return FetchResult{Status: FetchOK, Data: data, FetchedAt: time.Now()}
}

// FetchDegradedWith cria um resultado parcial com a causa da degradação
func FetchDegradedWith(data *SourceData, cause error) FetchResult {
	return FetchResult{Status: FetchDegraded, Data: data, Cause: cause, FetchedAt: time.Now()}
}

// FetchEmptyWith cria um resultado sem dados
func FetchEmptyWith(cause error) FetchResult {
	return FetchResult{Status: FetchEmpty, Cause: cause, FetchedAt: time.Now()}
}

// SourceDataEntry é a última coleta de dados persistida pelo agendador
type SourceDataEntry struct {
	ID        int64       `json:"id"`
	Year      int         `json:"year"`
	Data      *SourceData `json:"data"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
