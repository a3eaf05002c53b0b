package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/ranking-mk2/models"
)

func TestBuildSelectAllRankingsQuery(t *testing.T) {
	query, args, err := buildSelectAllRankingsQuery()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
	if !strings.Contains(query, "ORDER BY followers DESC, id ASC") {
		t.Errorf("expected stable ordering clause, got %q", query)
	}
}

func TestBuildSelectRankingByIDQuery(t *testing.T) {
	query, args, err := buildSelectRankingByIDQuery(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "WHERE id = $1") {
		t.Errorf("expected id placeholder, got %q", query)
	}
	if len(args) != 1 || args[0] != int64(5) {
		t.Errorf("expected args [5], got %v", args)
	}
}

func TestBuildInsertRankingQuery(t *testing.T) {
	ranking := models.Ranking{
		AccountName: "@a",
		ProfileURL:  "https://example.com/a",
		Followers:   100,
		ImageURL:    "",
		Area:        "東京",
		StoreName:   "店",
	}

	query, args, err := buildInsertRankingQuery(ranking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(query, "INSERT INTO rankings") {
		t.Errorf("unexpected query: %q", query)
	}
	if !strings.Contains(query, "RETURNING id, account_name") {
		t.Errorf("expected RETURNING clause, got %q", query)
	}
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d", len(args))
	}
	if args[0] != "@a" || args[2] != int64(100) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildUpdateRankingQuery(t *testing.T) {
	ranking := models.Ranking{ID: 7, AccountName: "@a", Followers: 100}

	query, args, err := buildUpdateRankingQuery(ranking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(query, "UPDATE rankings SET") {
		t.Errorf("unexpected query: %q", query)
	}
	if !strings.Contains(query, "updated_at = CURRENT_TIMESTAMP") {
		t.Errorf("expected updated_at refresh, got %q", query)
	}
	if !strings.Contains(query, "RETURNING id, account_name") {
		t.Errorf("expected RETURNING clause, got %q", query)
	}
	// six field args plus the id; CURRENT_TIMESTAMP binds no placeholder
	if len(args) != 7 {
		t.Fatalf("expected 7 args, got %d", len(args))
	}
	if args[len(args)-1] != int64(7) {
		t.Errorf("expected id as the last arg, got %v", args)
	}
}

func TestBuildDeleteRankingQuery(t *testing.T) {
	query, args, err := buildDeleteRankingQuery(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "DELETE FROM rankings WHERE id = $1" {
		t.Errorf("unexpected query: %q", query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("expected args [7], got %v", args)
	}
}
