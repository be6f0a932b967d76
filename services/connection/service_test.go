package connection

import (
	"testing"

	connectionRepo "craftlink/database/repository/connection"
	"craftlink/models"
)

type memConnectionRepo struct {
	edges []models.Connection
}

func (r *memConnectionRepo) Create(conn *models.Connection) error {
	for _, e := range r.edges {
		if (e.UserID == conn.UserID && e.TargetID == conn.TargetID) ||
			(e.UserID == conn.TargetID && e.TargetID == conn.UserID) {
			return connectionRepo.ErrConnectionExists
		}
	}
	r.edges = append(r.edges, *conn)
	return nil
}

func (r *memConnectionRepo) Accept(connectionID, userID string) error {
	for i, e := range r.edges {
		if e.ID == connectionID && e.TargetID == userID && e.Status == models.ConnectionStatusPending {
			r.edges[i].Status = models.ConnectionStatusAccepted
			return nil
		}
	}
	return connectionRepo.ErrConnectionNotFound
}

func (r *memConnectionRepo) GetByPair(userA, userB string) (*models.Connection, error) {
	for i, e := range r.edges {
		if (e.UserID == userA && e.TargetID == userB) || (e.UserID == userB && e.TargetID == userA) {
			return &r.edges[i], nil
		}
	}
	return nil, nil
}

func (r *memConnectionRepo) ListForUser(userID, status string) ([]models.Connection, error) {
	var out []models.Connection
	for _, e := range r.edges {
		if e.UserID != userID && e.TargetID != userID {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memConnectionRepo) ConnectedIDs(userID string) ([]string, error) {
	var out []string
	for _, e := range r.edges {
		if e.Status != models.ConnectionStatusAccepted {
			continue
		}
		if e.UserID == userID {
			out = append(out, e.TargetID)
		} else if e.TargetID == userID {
			out = append(out, e.UserID)
		}
	}
	return out, nil
}

func TestRequest_CreatesPendingEdge(t *testing.T) {
	svc := &DefaultConnectionService{Repo: &memConnectionRepo{}}

	conn, err := svc.Request("realtor-1", "contractor-1", models.WorkHistory{})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if conn.Status != models.ConnectionStatusPending {
		t.Fatalf("expected pending edge, got %q", conn.Status)
	}
	if conn.UserID != "realtor-1" || conn.TargetID != "contractor-1" {
		t.Fatalf("edge endpoints mismatch: %+v", conn)
	}
}

func TestRequest_RejectsSelf(t *testing.T) {
	svc := &DefaultConnectionService{Repo: &memConnectionRepo{}}

	if _, err := svc.Request("realtor-1", "realtor-1", models.WorkHistory{}); err != ErrSelfConnection {
		t.Fatalf("expected ErrSelfConnection, got %v", err)
	}
}

func TestRequest_RejectsDuplicatePair(t *testing.T) {
	svc := &DefaultConnectionService{Repo: &memConnectionRepo{}}

	if _, err := svc.Request("realtor-1", "contractor-1", models.WorkHistory{}); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	// The reverse direction still targets the same pair.
	_, err := svc.Request("contractor-1", "realtor-1", models.WorkHistory{})
	if err != connectionRepo.ErrConnectionExists {
		t.Fatalf("expected ErrConnectionExists, got %v", err)
	}
}

func TestAccept_BuildsNetwork(t *testing.T) {
	repo := &memConnectionRepo{}
	svc := &DefaultConnectionService{Repo: repo}

	conn, err := svc.Request("realtor-1", "contractor-1", models.WorkHistory{})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	// Only the target can accept.
	if err := svc.Accept("realtor-1", conn.ID); err != connectionRepo.ErrConnectionNotFound {
		t.Fatalf("expected requester accept to fail, got %v", err)
	}
	if err := svc.Accept("contractor-1", conn.ID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	network, err := svc.Network("realtor-1")
	if err != nil {
		t.Fatalf("network failed: %v", err)
	}
	if len(network) != 1 || network[0] != "contractor-1" {
		t.Fatalf("expected accepted peer in network, got %v", network)
	}
}
