package catalog

import (
	"context"
	"fmt"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Location{}, &Route{}, &RouteStep{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (Route, Route) {
	t.Helper()

	locs := []Location{
		{Name: "مدينة السلام"},
		{Name: "رمسيس"},
		{Name: "المعادي"},
	}
	for i := range locs {
		if err := db.Create(&locs[i]).Error; err != nil {
			t.Fatalf("seed location: %v", err)
		}
	}

	r1 := Route{FromLocationID: locs[0].ID, ToLocationID: locs[1].ID, TotalPrice: 15, TotalTime: 45, RouteTag: "الأرخص"}
	r2 := Route{FromLocationID: locs[0].ID, ToLocationID: locs[2].ID, TotalPrice: 25, TotalTime: 70, RouteTag: "الأسرع"}
	for _, r := range []*Route{&r1, &r2} {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed route: %v", err)
		}
	}

	steps := []RouteStep{
		{RouteID: r1.ID, StepOrder: 2, TransportType: "مترو", LineName: "الخط الأول", BoardingPoint: "رمسيس", ExitPoint: "السادات"},
		{RouteID: r1.ID, StepOrder: 1, TransportType: "ميكروباص", LineName: "السلام - رمسيس", ExitPoint: "رمسيس"},
	}
	for i := range steps {
		if err := db.Create(&steps[i]).Error; err != nil {
			t.Fatalf("seed step: %v", err)
		}
	}

	return r1, r2
}

func TestFindRoutes_SubstringMatch(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)
	seedCatalog(t, db)

	// Partial names on both sides still match.
	routes, err := store.FindRoutes(context.Background(), "السلام", "رمسيس")
	if err != nil {
		t.Fatalf("find routes: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}
	if routes[0].RouteTag != "الأرخص" {
		t.Fatalf("unexpected route tag %q", routes[0].RouteTag)
	}
}

func TestFindRoutes_NoMatch(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)
	seedCatalog(t, db)

	routes, err := store.FindRoutes(context.Background(), "أسوان", "الأقصر")
	if err != nil {
		t.Fatalf("find routes: %v", err)
	}
	if len(routes) != 0 {
		t.Fatalf("expected no routes, got %d", len(routes))
	}
}

func TestFindSteps_OrderedByStepOrder(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)
	r1, _ := seedCatalog(t, db)

	steps, err := store.FindSteps(context.Background(), r1.ID)
	if err != nil {
		t.Fatalf("find steps: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].StepOrder != 1 || steps[1].StepOrder != 2 {
		t.Fatalf("steps out of order: %d then %d", steps[0].StepOrder, steps[1].StepOrder)
	}
}

func TestSearchLocationNames(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)
	seedCatalog(t, db)

	names, err := store.SearchLocationNames(context.Background(), "السلام")
	if err != nil {
		t.Fatalf("search names: %v", err)
	}
	if len(names) != 1 || names[0] != "مدينة السلام" {
		t.Fatalf("unexpected suggestions: %v", names)
	}
}
