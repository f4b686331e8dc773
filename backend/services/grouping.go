package services

import "salesrep-roster/backend/models"

// RegionGroup pairs a region with its countries in input order
type RegionGroup struct {
	Region    string
	Countries []models.Country
}

// Names returns the country names of the group in order
func (g RegionGroup) Names() []string {
	names := make([]string, len(g.Countries))
	for i, c := range g.Countries {
		names[i] = c.Name
	}
	return names
}

// Group is one bucket produced by GroupBy
type Group[T any] struct {
	Key   string
	Items []T
}

// GroupBy partitions items by key in a single pass. Buckets are returned in
// the order their key was first seen and items keep their relative order.
func GroupBy[T any](items []T, key func(T) string) []Group[T] {
	var groups []Group[T]
	index := make(map[string]int)
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// GroupByRegion splits a flat country list into per-region groups, first
// region encountered first.
func GroupByRegion(countries []models.Country) []RegionGroup {
	buckets := GroupBy(countries, func(c models.Country) string { return c.Region })
	if len(buckets) == 0 {
		return nil
	}
	groups := make([]RegionGroup, len(buckets))
	for i, b := range buckets {
		groups[i] = RegionGroup{Region: b.Key, Countries: b.Items}
	}
	return groups
}
