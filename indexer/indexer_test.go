package indexer

import (
	"testing"

	"github.com/ttpr0/tripplanner/bussystem"
	"github.com/ttpr0/tripplanner/streetmap"
)

func buildSystem() *bussystem.MemoryBusSystem {
	b := bussystem.NewBuilder()
	b.AddStop(3, 30)
	b.AddStop(1, 10)
	b.AddStop(2, 20)

	b.AddRouteStop("B", 1)
	b.AddRouteStop("B", 2)
	b.AddRouteStop("A", 1)
	b.AddRouteStop("A", 2)
	b.AddRouteStop("A", 3)
	return b.Build()
}

func TestSortedStopByIndexAscendingStopID(t *testing.T) {
	idx := New(buildSystem())

	var ids []bussystem.StopID
	for i := 0; ; i++ {
		s, ok := idx.SortedStopByIndex(i)
		if !ok {
			break
		}
		ids = append(ids, s.ID())
	}

	want := []bussystem.StopID{1, 2, 3}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v; want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v; want %v", ids, want)
		}
	}
}

func TestSortedRouteByIndexAscendingName(t *testing.T) {
	idx := New(buildSystem())

	var names []string
	for i := 0; ; i++ {
		r, ok := idx.SortedRouteByIndex(i)
		if !ok {
			break
		}
		names = append(names, r.Name())
	}

	want := []string{"A", "B"}
	if len(names) != len(want) {
		t.Fatalf("names = %v; want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names = %v; want %v", names, want)
		}
	}
}

func TestStopByNodeID(t *testing.T) {
	idx := New(buildSystem())

	s, ok := idx.StopByNodeID(streetmap.NodeID(20))
	if !ok || s.ID() != 2 {
		t.Errorf("StopByNodeID(20) = %v, %v; want stop 2", s, ok)
	}
	if _, ok := idx.StopByNodeID(streetmap.NodeID(999)); ok {
		t.Errorf("StopByNodeID(999) = ok; want not found")
	}
}

func TestRoutesByNodeIDsOrderMatters(t *testing.T) {
	idx := New(buildSystem())

	routes, ok := idx.RoutesByNodeIDs(streetmap.NodeID(10), streetmap.NodeID(30))
	if !ok {
		t.Fatalf("expected route A to cover stop 1 -> stop 3")
	}
	if len(routes) != 1 || routes[0].Name() != "A" {
		t.Errorf("routes = %v; want [A]", routes)
	}

	// B only visits stops 1 and 2, never 3, so only A covers stop 2 -> stop 3.
	routes, ok = idx.RoutesByNodeIDs(streetmap.NodeID(20), streetmap.NodeID(30))
	if !ok || len(routes) != 1 || routes[0].Name() != "A" {
		t.Errorf("routes from stop 2 to stop 3 = %v, %v; want [A], true", routes, ok)
	}

	// Order matters: no route visits stop 3 before stop 1.
	if _, ok := idx.RoutesByNodeIDs(streetmap.NodeID(30), streetmap.NodeID(10)); ok {
		t.Errorf("expected no route from stop 3 to stop 1")
	}
}

func TestRouteBetweenNodeIDsUnknownNode(t *testing.T) {
	idx := New(buildSystem())

	if idx.RouteBetweenNodeIDs(streetmap.NodeID(10), streetmap.NodeID(999)) {
		t.Errorf("expected false for a destination that isn't a stop")
	}
}
