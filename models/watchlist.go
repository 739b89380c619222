package models

import "time"

type WatchlistEntityType int

const (
	EntityTypeIndividual WatchlistEntityType = iota
	EntityTypeOrganization
	EntityTypeUnknown
)

func WatchlistEntityTypeFrom(s string) WatchlistEntityType {
	switch s {
	case "individual":
		return EntityTypeIndividual
	case "organization":
		return EntityTypeOrganization
	}

	return EntityTypeUnknown
}

func (t WatchlistEntityType) String() string {
	switch t {
	case EntityTypeIndividual:
		return "individual"
	case EntityTypeOrganization:
		return "organization"
	}

	return "unknown"
}

type WatchlistEntityStatus int

const (
	WatchlistEntityStatusActive WatchlistEntityStatus = iota
	WatchlistEntityStatusInactive
	WatchlistEntityStatusUnknown
)

func WatchlistEntityStatusFrom(s string) WatchlistEntityStatus {
	switch s {
	case "active":
		return WatchlistEntityStatusActive
	case "inactive":
		return WatchlistEntityStatusInactive
	}

	return WatchlistEntityStatusUnknown
}

func (s WatchlistEntityStatus) String() string {
	switch s {
	case WatchlistEntityStatusActive:
		return "active"
	case WatchlistEntityStatusInactive:
		return "inactive"
	}

	return "unknown"
}

// WatchlistEntity is a person or organization on a sanctions or PEP list.
// The entity store is read-only from the screening engine's perspective:
// ingestion and maintenance of the list happen elsewhere.
type WatchlistEntity struct {
	Id                 string
	Name               string
	EntityType         WatchlistEntityType
	Aliases            []string
	BirthDate          *string
	Nationalities      []string
	SanctionsReason    string
	SanctionsAuthority string
	Status             WatchlistEntityStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
