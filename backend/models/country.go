package models

import "time"

// Country is a single country record tagged with the sales region it belongs to
type Country struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"not null;uniqueIndex:idx_country_region" json:"name" yaml:"name"`
	Region    string    `gorm:"not null;index;uniqueIndex:idx_country_region" json:"region" yaml:"region"`
	CreatedAt time.Time `json:"-" yaml:"-"`
	UpdatedAt time.Time `json:"-" yaml:"-"`
}

// SalesRepRange is the representative count window for one region
type SalesRepRange struct {
	Region      string `json:"region"`
	MinSalesRep int    `json:"minSalesRep"`
	MaxSalesRep int    `json:"maxSalesRep"`
}

// RosterEntry is the set of countries assigned to one sales representative
type RosterEntry struct {
	Region       string   `json:"region"`
	CountryList  []string `json:"countryList"`
	CountryCount int      `json:"countryCount"`
}
