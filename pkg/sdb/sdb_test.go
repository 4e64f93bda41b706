package sdb

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var schema = []string{
	`CREATE TABLE meta (name TEXT, value TEXT)`,
	`CREATE TABLE units (id INTEGER PRIMARY KEY, name TEXT, description TEXT)`,
	`CREATE TABLE sites (id INTEGER PRIMARY KEY, id_units INTEGER, name TEXT,
		x_coord REAL, y_coord REAL, description TEXT)`,
	`CREATE TABLE structype (id INTEGER PRIMARY KEY, structure TEXT,
		description TEXT, structcode TEXT, groupcode TEXT, planar INTEGER)`,
	`CREATE TABLE structdata (id INTEGER PRIMARY KEY, id_sites INTEGER,
		id_structype INTEGER, azimuth REAL, inclination REAL)`,
	`INSERT INTO meta VALUES ('version', '3.1.0')`,
	`INSERT INTO units VALUES (1, 'gneiss', '')`,
	`INSERT INTO sites VALUES (1, 1, 'ST1', 450233, 5542819, '')`,
	`INSERT INTO structype VALUES (1, 'S2', 'foliation', 'S', 'F', 1)`,
	`INSERT INTO structype VALUES (2, 'L2', 'lineation', 'L', 'L', 0)`,
	`INSERT INTO structdata VALUES (1, 1, 1, 150, 40)`,
	`INSERT INTO structdata VALUES (2, 1, 1, 155, 35)`,
	`INSERT INTO structdata VALUES (3, 1, 2, 120, 30)`,
}

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "field.sdb")
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("creating test db: %v", err)
	}
	for _, stmt := range schema {
		if err := conn.Exec(stmt).Error; err != nil {
			t.Fatalf("seeding test db: %v", err)
		}
	}
	db, err := Open(path)
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	return db
}

func TestVersion(t *testing.T) {
	db := testDB(t)
	v, err := db.Version()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "3.1.0" {
		t.Errorf("expected version 3.1.0, got %q", v)
	}
}

func TestMetaMissing(t *testing.T) {
	db := testDB(t)
	v, err := db.Meta("crs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "" {
		t.Errorf("expected empty value, got %q", v)
	}
}

func TestStructuresAndSites(t *testing.T) {
	db := testDB(t)
	ss, err := db.Structures()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ss) != 2 || ss[0].Name != "S2" || ss[1].Name != "L2" {
		t.Errorf("unexpected structures: %v", ss)
	}
	if ss[0].Planar != 1 || ss[1].Planar != 0 {
		t.Errorf("planar flags lost: %v", ss)
	}
	sites, err := db.Sites()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sites) != 1 || sites[0].Name != "ST1" {
		t.Errorf("unexpected sites: %v", sites)
	}
}

func TestFoliationsBySortedID(t *testing.T) {
	db := testDB(t)
	fs, err := db.Foliations("S2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 foliations, got %d", fs.Len())
	}
	azi, inc := fs.At(0).Geo()
	if diff := azi - 150; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected azimuth 150, got %f", azi)
	}
	if diff := inc - 40; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected dip 40, got %f", inc)
	}
}

func TestLineations(t *testing.T) {
	db := testDB(t)
	ls, err := db.Lineations("L2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ls.Len() != 1 {
		t.Fatalf("expected 1 lineation, got %d", ls.Len())
	}
}

func TestKindMismatch(t *testing.T) {
	db := testDB(t)
	if _, err := db.Lineations("S2"); !errors.Is(err, ErrWrongKind) {
		t.Errorf("expected ErrWrongKind, got %v", err)
	}
	if _, err := db.Foliations("L2"); !errors.Is(err, ErrWrongKind) {
		t.Errorf("expected ErrWrongKind, got %v", err)
	}
}

func TestUnknownStructure(t *testing.T) {
	db := testDB(t)
	if _, err := db.Foliations("S9"); !errors.Is(err, ErrUnknownStructure) {
		t.Errorf("expected ErrUnknownStructure, got %v", err)
	}
}
