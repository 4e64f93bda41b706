// Package sdb reads PySDB structural databases, the SQLite format used
// by field data collection tools. It exposes stored measurements as
// feature sets.
package sdb

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/geofabric/geofabric/pkg/feature"
)

// ErrUnknownStructure reports a structure name not present in the
// database.
var ErrUnknownStructure = errors.New("sdb: unknown structure")

// ErrWrongKind reports a planar structure requested as linear or the
// other way around.
var ErrWrongKind = errors.New("sdb: structure kind mismatch")

// Structure is one row of the structype table.
type Structure struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:structure"`
	Description string `gorm:"column:description"`
	Code        string `gorm:"column:structcode"`
	GroupCode   string `gorm:"column:groupcode"`
	Planar      int    `gorm:"column:planar"`
}

// TableName maps Structure onto the PySDB schema.
func (Structure) TableName() string { return "structype" }

// Site is one row of the sites table.
type Site struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name"`
	X           float64 `gorm:"column:x_coord"`
	Y           float64 `gorm:"column:y_coord"`
	Description string  `gorm:"column:description"`
	UnitID      int64   `gorm:"column:id_units"`
}

// TableName maps Site onto the PySDB schema.
func (Site) TableName() string { return "sites" }

// Unit is one row of the units table.
type Unit struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
}

// TableName maps Unit onto the PySDB schema.
func (Unit) TableName() string { return "units" }

type measurement struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	SiteID      int64   `gorm:"column:id_sites"`
	StructypeID int64   `gorm:"column:id_structype"`
	Azimuth     float64 `gorm:"column:azimuth"`
	Inclination float64 `gorm:"column:inclination"`
}

func (measurement) TableName() string { return "structdata" }

type metaRow struct {
	Name  string `gorm:"column:name"`
	Value string `gorm:"column:value"`
}

func (metaRow) TableName() string { return "meta" }

// DB is an open PySDB database.
type DB struct {
	conn *gorm.DB
}

// Open opens a PySDB SQLite file read-only.
func Open(path string) (*DB, error) {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &DB{conn: conn}, nil
}

// Meta returns the value of a meta table entry, or an empty string when
// absent.
func (d *DB) Meta(name string) (string, error) {
	var row metaRow
	err := d.conn.Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading meta %q: %w", name, err)
	}
	return row.Value, nil
}

// Version returns the schema version recorded in the database.
func (d *DB) Version() (string, error) {
	return d.Meta("version")
}

// Structures lists all structure definitions.
func (d *DB) Structures() ([]Structure, error) {
	var out []Structure
	if err := d.conn.Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing structures: %w", err)
	}
	return out, nil
}

// Sites lists all sites.
func (d *DB) Sites() ([]Site, error) {
	var out []Site
	if err := d.conn.Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}
	return out, nil
}

// Units lists all lithological units.
func (d *DB) Units() ([]Unit, error) {
	var out []Unit
	if err := d.conn.Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	return out, nil
}

func (d *DB) structure(name string) (Structure, error) {
	var s Structure
	err := d.conn.Where("structure = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Structure{}, fmt.Errorf("%w: %q", ErrUnknownStructure, name)
	}
	if err != nil {
		return Structure{}, fmt.Errorf("looking up structure %q: %w", name, err)
	}
	return s, nil
}

func (d *DB) measurements(s Structure) ([]float64, []float64, error) {
	var rows []measurement
	err := d.conn.Where("id_structype = ?", s.ID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, nil, fmt.Errorf("reading %q measurements: %w", s.Name, err)
	}
	azis := make([]float64, len(rows))
	incs := make([]float64, len(rows))
	for i, r := range rows {
		azis[i] = r.Azimuth
		incs[i] = r.Inclination
	}
	return azis, incs, nil
}

// Lineations returns all measurements of a linear structure.
func (d *DB) Lineations(name string) (feature.LineationSet, error) {
	s, err := d.structure(name)
	if err != nil {
		return feature.LineationSet{}, err
	}
	if s.Planar != 0 {
		return feature.LineationSet{}, fmt.Errorf("%w: %q is planar", ErrWrongKind, name)
	}
	azis, incs, err := d.measurements(s)
	if err != nil {
		return feature.LineationSet{}, err
	}
	return feature.LineationSetFromGeo(azis, incs, name)
}

// Foliations returns all measurements of a planar structure.
func (d *DB) Foliations(name string) (feature.FoliationSet, error) {
	s, err := d.structure(name)
	if err != nil {
		return feature.FoliationSet{}, err
	}
	if s.Planar == 0 {
		return feature.FoliationSet{}, fmt.Errorf("%w: %q is linear", ErrWrongKind, name)
	}
	azis, incs, err := d.measurements(s)
	if err != nil {
		return feature.FoliationSet{}, err
	}
	return feature.FoliationSetFromGeo(azis, incs, name)
}
