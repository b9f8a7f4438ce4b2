package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/gamenight/internal/models"
)

// CoveredDebts returns the open debts owed by fromID to toID whose amount is at
// most the settlement amount. Each debt is compared to the amount on its own;
// a larger debt is never partially settled and smaller debts are not summed.
func CoveredDebts(debts []*models.Debt, fromID, toID string, amount decimal.Decimal) []*models.Debt {
	var covered []*models.Debt
	for _, d := range debts {
		if d.IsSettled || d.CreditorID != toID || d.DebtorID != fromID {
			continue
		}
		if d.Amount.LessThanOrEqual(amount) {
			covered = append(covered, d)
		}
	}
	return covered
}
