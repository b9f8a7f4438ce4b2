// Package models defines the core domain records for gamenight.
//
// # Records
//
//   - Player: a member of the fixed game-night group with a cumulative score
//   - Debt: an obligation from one player to another, open or settled
//   - GameExpense: a shared cost paid by one player and split among participants
//   - Settlement: a recorded payment from one player to another
//   - PlayDate: a scheduled game night
//
// # Design Principles
//
// 1. **Flat records**: every record is keyed by its own ID and owns no other record
// 2. **ID references**: relationships use ID strings instead of pointers
// 3. **Exact money**: amounts are decimal.Decimal, never float64
// 4. **Immutable history**: debts only ever change by flipping IsSettled
package models
