package carpet

import (
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
)

// Items is the carpet list of one order. It always holds at least one item.
type Items struct {
	list []*Item
}

// NewItems returns a list with a single empty carpet.
func NewItems() Items {
	return Items{list: []*Item{NewItem()}}
}

// Len returns the number of carpets.
func (s *Items) Len() int {
	return len(s.list)
}

// All returns copies of the items in order; editing them does not affect the list.
func (s *Items) All() []*Item {
	out := make([]*Item, len(s.list))
	for i, item := range s.list {
		out[i] = item.clone()
	}
	return out
}

// Add appends an empty carpet and returns it.
func (s *Items) Add() *Item {
	item := NewItem()
	s.list = append(s.list, item)
	return item.clone()
}

// RemoveLast drops the last carpet. It reports false and keeps the list as is
// when only one carpet is left.
func (s *Items) RemoveLast() bool {
	if len(s.list) <= 1 {
		return false
	}
	s.list[len(s.list)-1] = nil
	s.list = s.list[:len(s.list)-1]
	return true
}

// Update sets one dimension of the carpet with the given id.
func (s *Items) Update(id kernel.UUID, dimension, value string) error {
	for _, item := range s.list {
		if item.ID().IsEqual(id) {
			return item.Set(dimension, value)
		}
	}
	return errs.NewObjectNotFoundError("item", id.String())
}

// Totals derives the summary for the current list.
func (s *Items) Totals(p Pricing) Totals {
	return CalculateTotals(s.list, p)
}
