package discovery

import (
	"testing"

	"craftlink/models"
)

func deck() []models.User {
	return []models.User{
		{ID: "a", Name: "Ada", Specialty: "plumbing", Rating: 4.2},
		{ID: "b", Name: "Ben", Specialty: "electrical", Rating: 4.9},
		{ID: "c", Name: "Cam", Specialty: "plumbing", Rating: 4.9},
		{ID: "d", Name: "Dee", Specialty: "roofing", Rating: 3.1},
	}
}

func ids(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestRankContractors_PreferredSpecialtyFirst(t *testing.T) {
	ranked := rankContractors(deck(), []string{"plumbing"})

	got := ids(ranked)
	want := []string{"c", "a", "b", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestRankContractors_NoPreferenceSortsByRating(t *testing.T) {
	ranked := rankContractors(deck(), nil)

	got := ids(ranked)
	// 4.9 ties break by name: Ben before Cam.
	want := []string{"b", "c", "a", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestRankContractors_CaseInsensitiveMatch(t *testing.T) {
	ranked := rankContractors(deck(), []string{"Plumbing"})
	if ranked[0].Specialty != "plumbing" {
		t.Fatalf("expected case-insensitive specialty match, got %+v", ranked[0])
	}
}

func TestRankContractors_DoesNotMutateInput(t *testing.T) {
	in := deck()
	rankContractors(in, []string{"roofing"})
	if in[0].ID != "a" {
		t.Fatalf("expected input order untouched, got %v", ids(in))
	}
}
