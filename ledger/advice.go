package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Advice 分析页的财务建议
type Advice struct {
	Healthy bool   `json:"saludable"`
	Title   string `json:"titulo"`
	Message string `json:"mensaje"`
	// Suggested 建议转入投资的金额，仅在结余非负时有值
	Suggested int64 `json:"sugerido,omitempty"`
}

var investShare = decimal.NewFromFloat(0.3)

// Advise 根据结余给出建议；赤字时提示减少 breakdown 中第一个类别的支出
func Advise(s Summary, breakdown []CategorySlice) Advice {
	if s.Balance >= 0 {
		suggested := roundHalfUp(decimal.NewFromInt(s.Balance).Mul(investShare))
		return Advice{
			Healthy:   true,
			Title:     "🚀 Salud Óptima",
			Suggested: suggested,
			Message: fmt.Sprintf("Mantienes un superávit de %s. Tu tasa de ahorro es del %d%%. Sugerencia: Automatiza %s a inversión.",
				FormatCLP(s.Balance), s.SavingsRate, FormatCLP(suggested)),
		}
	}

	name := "Varios"
	if len(breakdown) > 0 {
		name = breakdown[0].Name
	}
	return Advice{
		Title:   "⚠️ Alerta de Flujo",
		Message: fmt.Sprintf("Estás gastando más de lo que ingresas. Reduce gastos en \"%s\" para recuperar balance.", name),
	}
}
