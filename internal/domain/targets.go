package domain

// InputMethod define como as metas são informadas
type InputMethod string

const (
	InputMethodMonthly InputMethod = "monthly"
	InputMethodAnnual  InputMethod = "annual"
)

// RolloverStrategy define como o déficit de meses concluídos é levado aos meses seguintes
type RolloverStrategy string

const (
	RolloverNone         RolloverStrategy = "none"
	RolloverCumulative   RolloverStrategy = "cumulative"
	RolloverQuarterly    RolloverStrategy = "quarterly"
	RolloverRedistribute RolloverStrategy = "redistribute"
)

// DistributionMethod define como a meta anual é dividida em meses
type DistributionMethod string

const (
	DistributionEqual    DistributionMethod = "equal"
	DistributionWeighted DistributionMethod = "weighted"
	DistributionCustom   DistributionMethod = "custom"
)

// MonthlyTargets guarda as metas de vendas e lucro bruto de janeiro a dezembro
type MonthlyTargets struct {
	Sales [12]float64 `json:"sales"`
	GP    [12]float64 `json:"gp"`
}

// AnnualTargets é a meta anual e sua política de distribuição
type AnnualTargets struct {
	Sales        float64            `json:"sales"`
	GP           float64            `json:"gp"`
	Distribution DistributionMethod `json:"distribution"`
	Weights      []float64          `json:"weights,omitempty"`
}

// TargetSet é um par independente de metas mensais e anuais
type TargetSet struct {
	MonthlyTargets MonthlyTargets `json:"monthly_targets"`
	AnnualTargets  AnnualTargets  `json:"annual_targets"`
}

// EnhancedTargets é a configuração completa de metas de um usuário
type EnhancedTargets struct {
	InputMethod          InputMethod          `json:"input_method"`
	RolloverStrategy     RolloverStrategy     `json:"rollover_strategy"`
	MonthlyTargets       MonthlyTargets       `json:"monthly_targets"`
	AnnualTargets        AnnualTargets        `json:"annual_targets"`
	GlobalTargets        bool                 `json:"global_targets"`
	SelectedBusinessUnit string               `json:"selected_business_unit,omitempty"`
	BusinessUnitTargets  map[string]TargetSet `json:"business_unit_targets,omitempty"`
}

// TargetAmount é um par de metas (ou realizados) de vendas e lucro bruto
type TargetAmount struct {
	Sales float64 `json:"sales"`
	GP    float64 `json:"gp"`
}

// TargetPlan é o conjunto de metas mensais efetivamente usado na conciliação
type TargetPlan struct {
	Monthly  MonthlyTargets   `json:"monthly"`
	Rollover RolloverStrategy `json:"rollover"`
}

// TargetSummary resume as metas acumuladas para a tela de edição
type TargetSummary struct {
	Month    int              `json:"month"`
	YTD      TargetAmount     `json:"ytd"`
	Quarters [4]TargetAmount  `json:"quarters"`
	Annual   TargetAmount     `json:"annual"`
	Monthly  MonthlyTargets   `json:"monthly"`
	Rollover RolloverStrategy `json:"rollover"`
}

// DistributeRequest é a pré-visualização de distribuição da meta anual
type DistributeRequest struct {
	Sales        float64            `json:"sales" validate:"gte=0"`
	GP           float64            `json:"gp" validate:"gte=0"`
	Distribution DistributionMethod `json:"distribution"`
	Weights      []float64          `json:"weights,omitempty"`
}
