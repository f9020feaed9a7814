package models

import (
	"math/rand"
	"testing"
)

func TestClientRegistryBookkeeping(t *testing.T) {
	g := NewGame("REG001", rand.New(rand.NewSource(1)))
	ch := make(chan Envelope, 1)

	g.Lock()
	defer g.Unlock()

	if g.ClientCount() != 0 {
		t.Fatalf("fresh game has %d clients", g.ClientCount())
	}

	g.AddClient(ch, ClientInfo{Role: RoleSpectator})
	if g.ClientCount() != 1 {
		t.Fatalf("count = %d after register, want 1", g.ClientCount())
	}

	g.SetClientInfo(ch, ClientInfo{SessionID: "tok", Role: RoleContestant})
	clients := g.Clients()
	if info, ok := clients[ch]; !ok || info.Role != RoleContestant || info.SessionID != "tok" {
		t.Errorf("client info = %+v, want rebound contestant", clients[ch])
	}

	// Clients returns a copy; mutating it must not touch the registry.
	delete(clients, ch)
	if g.ClientCount() != 1 {
		t.Error("mutating the returned copy changed the registry")
	}

	g.SetClientInfo(make(chan Envelope), ClientInfo{Role: RolePresenter})
	if g.ClientCount() != 1 {
		t.Error("rebinding an unregistered channel grew the registry")
	}

	g.RemoveClient(ch)
	if g.ClientCount() != 0 {
		t.Errorf("count = %d after remove, want 0", g.ClientCount())
	}
}
