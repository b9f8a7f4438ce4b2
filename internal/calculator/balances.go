package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/gamenight/internal/models"
)

// Suggestion is a proposed payment from one player to another.
type Suggestion struct {
	FromPlayerID string          // Player with a negative net balance
	ToPlayerID   string          // Player with a positive net balance
	Amount       decimal.Decimal // Always positive
	FromBalance  decimal.Decimal // Net balance of the payer when suggested
	ToBalance    decimal.Decimal // Net balance of the receiver when suggested
}

// NetBalance is the sum of open debts owed to playerID minus the sum of open
// debts playerID owes. Positive means the player is owed money.
// Settled debts never contribute.
func NetBalance(debts []*models.Debt, playerID string) decimal.Decimal {
	balance := decimal.Zero
	for _, d := range debts {
		if d.IsSettled {
			continue
		}
		if d.CreditorID == playerID {
			balance = balance.Add(d.Amount)
		}
		if d.DebtorID == playerID {
			balance = balance.Sub(d.Amount)
		}
	}
	return balance
}

// Partition splits the open debts involving playerID into those owed to the
// player and those the player owes. Input order is preserved.
func Partition(debts []*models.Debt, playerID string) (owedToPlayer, playerOwes []*models.Debt) {
	for _, d := range debts {
		if d.IsSettled {
			continue
		}
		if d.CreditorID == playerID {
			owedToPlayer = append(owedToPlayer, d)
		}
		if d.DebtorID == playerID {
			playerOwes = append(playerOwes, d)
		}
	}
	return owedToPlayer, playerOwes
}

// Total sums the amounts of the given debts regardless of their state.
func Total(debts []*models.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Amount)
	}
	return total
}

// DebtsBetween returns the open debts between a and b in either direction.
func DebtsBetween(debts []*models.Debt, a, b string) []*models.Debt {
	var between []*models.Debt
	for _, d := range debts {
		if d.IsSettled {
			continue
		}
		if (d.CreditorID == a && d.DebtorID == b) || (d.CreditorID == b && d.DebtorID == a) {
			between = append(between, d)
		}
	}
	return between
}

// SuggestSettlements walks every ordered pair (A, B) of playerIDs and, when A
// is owed money and B owes money, suggests B pays A min(balance(A), |balance(B)|).
//
// Pairs are evaluated independently, so for three or more players the
// suggestions overlap. Callers usually show only the first few.
func SuggestSettlements(debts []*models.Debt, playerIDs []string) []Suggestion {
	balances := make(map[string]decimal.Decimal, len(playerIDs))
	for _, id := range playerIDs {
		balances[id] = NetBalance(debts, id)
	}

	var suggestions []Suggestion
	for _, a := range playerIDs {
		for _, b := range playerIDs {
			if a == b {
				continue
			}
			balanceA, balanceB := balances[a], balances[b]
			if !balanceA.IsPositive() || !balanceB.IsNegative() {
				continue
			}
			amount := decimal.Min(balanceA, balanceB.Abs())
			suggestions = append(suggestions, Suggestion{
				FromPlayerID: b,
				ToPlayerID:   a,
				Amount:       amount,
				FromBalance:  balanceB,
				ToBalance:    balanceA,
			})
		}
	}
	return suggestions
}

// SimplifyDebts computes a transfer plan that clears every open balance among
// playerIDs using greedy matching: the largest debtor pays the largest
// creditor until one side reaches zero, then moves to the next.
// Players with a zero balance do not appear in the plan.
func SimplifyDebts(debts []*models.Debt, playerIDs []string) []Suggestion {
	type entry struct {
		id      string
		balance decimal.Decimal
	}

	// Create lists of creditors (owed money) and debtors (owe money)
	var creditors, debtors []entry
	for _, id := range playerIDs {
		balance := NetBalance(debts, id)
		if balance.IsPositive() {
			creditors = append(creditors, entry{id, balance})
		} else if balance.IsNegative() {
			debtors = append(debtors, entry{id, balance.Abs()})
		}
	}
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].balance.GreaterThan(creditors[j].balance) })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].balance.GreaterThan(debtors[j].balance) })

	var plan []Suggestion
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := &debtors[i], &creditors[j]

		// Amount to settle is minimum of what debtor owes and creditor is owed
		amount := decimal.Min(debtor.balance, creditor.balance)
		if amount.IsPositive() {
			plan = append(plan, Suggestion{
				FromPlayerID: debtor.id,
				ToPlayerID:   creditor.id,
				Amount:       amount,
				FromBalance:  debtor.balance.Neg(),
				ToBalance:    creditor.balance,
			})
		}

		debtor.balance = debtor.balance.Sub(amount)
		creditor.balance = creditor.balance.Sub(amount)

		// Move to next debtor/creditor if fully settled
		if !debtor.balance.IsPositive() {
			i++
		}
		if !creditor.balance.IsPositive() {
			j++
		}
	}
	return plan
}
