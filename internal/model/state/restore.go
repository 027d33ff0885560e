package state

import "max.ks1230/gastos-client/internal/entity/expense"

// Restore seeds a collection that has never been loaded with previously saved
// data. The collection is marked Stale: it is shown, but a fetch is still due.
// Collections that already hold fetched data are left alone.
func (s *Store) Restore(categories []expense.Category, paymentTypes []expense.PaymentType, expenses []expense.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	if categories != nil && s.meta[Categories].applied == 0 {
		s.categories = categories
		s.meta[Categories].status = Stale
		s.meta[Categories].stale = true
		changed = true
	}
	if paymentTypes != nil && s.meta[PaymentTypes].applied == 0 {
		s.paymentTypes = paymentTypes
		s.meta[PaymentTypes].status = Stale
		s.meta[PaymentTypes].stale = true
		changed = true
	}
	if expenses != nil && s.meta[Expenses].applied == 0 {
		expense.SortByDateDesc(expenses)
		s.expenses = expenses
		s.meta[Expenses].status = Stale
		s.meta[Expenses].stale = true
		changed = true
	}
	if changed {
		s.notifyLocked()
	}
}
