package booking

import (
	"sort"

	"github.com/samber/lo"
)

type Availability struct {
	AvailableTimes []string
	BookedTimes    []string
}

// ComputeAvailability subtracts booked labels from the canonical slots.
// Booked labels are de-duplicated; canonical ones come first in slot order,
// anything else follows sorted.
func ComputeAvailability(booked []string) Availability {
	slots := CanonicalSlots()
	unique := lo.Uniq(booked)

	position := make(map[string]int, len(slots))
	for i, s := range slots {
		position[s] = i
	}

	sort.SliceStable(unique, func(i, j int) bool {
		pi, iok := position[unique[i]]
		pj, jok := position[unique[j]]
		switch {
		case iok && jok:
			return pi < pj
		case iok != jok:
			return iok
		default:
			return unique[i] < unique[j]
		}
	})

	return Availability{
		AvailableTimes: lo.Without(slots, unique...),
		BookedTimes:    unique,
	}
}
