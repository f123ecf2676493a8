package models

import (
	"time"
)

// Naan is a registered naming authority.
type Naan struct {
	NAAN        int       `json:"naan" gorm:"primaryKey;autoIncrement:false"`
	Name        string    `json:"name" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`
	URL         string    `json:"url" gorm:"type:text"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime;type:timestamp with time zone"`
}

// Shoulder partitions an authority's namespace under a short prefix.
type Shoulder struct {
	Shoulder       string    `json:"shoulder" gorm:"primaryKey;type:text"`
	NAAN           int       `json:"naan" gorm:"index"`
	Naan           Naan      `json:"-" gorm:"foreignKey:NAAN;references:NAAN"`
	Name           string    `json:"name" gorm:"type:text"`
	Description    string    `json:"description" gorm:"type:text"`
	RedirectPrefix string    `json:"redirectPrefix" gorm:"type:text"`
	Template       string    `json:"template" gorm:"type:text"`
	CDate          time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate          time.Time `json:"mdate" gorm:"autoUpdateTime;type:timestamp with time zone"`
}

// Ark maps one minted identifier to its target URL. Identifier is the
// "naan/assignedName" key; the primary key carries the uniqueness
// constraint the minter relies on.
type Ark struct {
	Identifier   string    `json:"identifier" gorm:"primaryKey;type:text"`
	NAAN         int       `json:"naan" gorm:"index"`
	AssignedName string    `json:"assignedName" gorm:"type:text"`
	Shoulder     string    `json:"shoulder" gorm:"type:text;index"`
	URL          string    `json:"url" gorm:"type:text"`
	Who          string    `json:"who" gorm:"type:text"`
	What         string    `json:"what" gorm:"type:text"`
	When         string    `json:"when" gorm:"type:text"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
