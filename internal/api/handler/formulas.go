package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/formula"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// EvaluateFormulaRequest é a expressão do formulário com os valores já digitados
type EvaluateFormulaRequest struct {
	Expression *formula.Expr       `json:"expression"`
	Variables  map[string]float64 `json:"variables"`
}

// EvaluateFormulaResponse devolve o resultado e a expressão em notação infixa
type EvaluateFormulaResponse struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
	Rounded    float64 `json:"rounded"`
}

// EvaluateFormula avalia uma fórmula do formulário de pedidos; variáveis não
// informadas valem zero
func EvaluateFormula() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req EvaluateFormulaRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		if req.Expression == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Expressão não informada", nil)
			return
		}

		if err := req.Expression.Validate(formula.OrderVariables); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormula, err.Error(), nil)
			return
		}

		vars := make(map[string]float64, len(formula.OrderVariables))
		for _, name := range formula.OrderVariables {
			vars[name] = req.Variables[name]
		}

		result, err := formula.Evaluate(*req.Expression, vars)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormula, err.Error(), nil)
			return
		}

		respond(w, r, http.StatusOK, EvaluateFormulaResponse{
			Expression: req.Expression.String(),
			Result:     result,
			Rounded:    utils.RoundWithTwoDecimalPlace(result),
		}, "formulas")
	})
}
