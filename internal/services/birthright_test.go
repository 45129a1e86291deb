package services

import "testing"

func TestBirthrightProjectionDoubles(t *testing.T) {
	rows := BirthrightProjection(3, 6)
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	if rows[0].Pods != 3 || rows[1].Pods != 6 || rows[6].Pods != 192 {
		t.Fatalf("unexpected pod counts: %+v", rows)
	}
	if rows[0].Area != "12 m²" {
		t.Fatalf("unexpected year-0 area: %s", rows[0].Area)
	}
}

func TestBirthrightProjectionCapsAndHectares(t *testing.T) {
	rows := BirthrightProjection(60000, 2)
	if rows[0].Pods != 60000 {
		t.Fatalf("unexpected year-0 pods: %d", rows[0].Pods)
	}
	if rows[1].Pods != 99999 {
		t.Fatalf("expected cap at 99999 pods, got %d", rows[1].Pods)
	}
	if rows[0].Area != "24.0 ha" {
		t.Fatalf("expected hectare formatting, got %s", rows[0].Area)
	}
}
