package router

import (
	"math"
	"testing"
)

func TestAddEdgeRejectsNonPositiveWeight(t *testing.T) {
	r := New[int]()
	a := r.AddVertex(0)
	b := r.AddVertex(0)

	if r.AddEdge(a, b, 0, false) {
		t.Errorf("AddEdge accepted a zero weight")
	}
	if r.AddEdge(a, b, -1, false) {
		t.Errorf("AddEdge accepted a negative weight")
	}
	if !r.AddEdge(a, b, 1, false) {
		t.Errorf("AddEdge rejected a valid edge")
	}
}

func TestAddEdgeRejectsOutOfRangeVertex(t *testing.T) {
	r := New[int]()
	a := r.AddVertex(0)

	if r.AddEdge(a, VertexID(99), 1, false) {
		t.Errorf("AddEdge accepted an out-of-range destination")
	}
	if r.AddEdge(VertexID(99), a, 1, false) {
		t.Errorf("AddEdge accepted an out-of-range source")
	}
}

func TestFindShortestPathEmptyGraph(t *testing.T) {
	r := New[int]()
	var path []VertexID

	dist := r.FindShortestPath(1, 2, &path)
	if dist != NoPathExists {
		t.Errorf("dist = %v; want NoPathExists", dist)
	}
	if len(path) != 0 {
		t.Errorf("path = %v; want empty", path)
	}
}

func TestFindShortestPathIdentity(t *testing.T) {
	r := New[int]()
	a := r.AddVertex(0)
	var path []VertexID

	dist := r.FindShortestPath(a, a, &path)
	if dist != 0 {
		t.Errorf("dist = %v; want 0", dist)
	}
	if len(path) != 1 || path[0] != a {
		t.Errorf("path = %v; want [%v]", path, a)
	}
}

func TestFindShortestPathTriangle(t *testing.T) {
	// S4: nodes 1,2,3 with ways 1-2 (5), 2-3 (5), 1-3 (20).
	r := New[int]()
	n1 := r.AddVertex(1)
	n2 := r.AddVertex(2)
	n3 := r.AddVertex(3)
	r.AddEdge(n1, n2, 5, true)
	r.AddEdge(n2, n3, 5, true)
	r.AddEdge(n1, n3, 20, true)

	var path []VertexID
	dist := r.FindShortestPath(n1, n3, &path)
	if dist != 10 {
		t.Errorf("dist = %v; want 10", dist)
	}
	want := []VertexID{n1, n2, n3}
	if len(path) != len(want) {
		t.Fatalf("path = %v; want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path = %v; want %v", path, want)
		}
	}
}

func TestFindShortestPathUnreachable(t *testing.T) {
	r := New[int]()
	n1 := r.AddVertex(1)
	n2 := r.AddVertex(2)
	_ = n2

	var path []VertexID
	dist := r.FindShortestPath(n1, n2, &path)
	if dist != NoPathExists {
		t.Errorf("dist = %v; want NoPathExists", dist)
	}
	if len(path) != 0 {
		t.Errorf("path = %v; want empty", path)
	}
}

func TestFindShortestPathOutOfRange(t *testing.T) {
	r := New[int]()
	n1 := r.AddVertex(1)
	n2 := r.AddVertex(2)
	r.AddEdge(n1, n2, 1, true)

	var path []VertexID
	dist := r.FindShortestPath(n1, VertexID(99), &path)
	if dist != NoPathExists {
		t.Errorf("dist = %v; want NoPathExists", dist)
	}
	if len(path) != 0 {
		t.Errorf("path = %v; want empty", path)
	}
}

func TestFindShortestPathSymmetric(t *testing.T) {
	r := New[int]()
	n1 := r.AddVertex(1)
	n2 := r.AddVertex(2)
	n3 := r.AddVertex(3)
	r.AddEdge(n1, n2, 5, true)
	r.AddEdge(n2, n3, 5, true)
	r.AddEdge(n1, n3, 20, true)

	var fwd, bwd []VertexID
	d1 := r.FindShortestPath(n1, n3, &fwd)
	d2 := r.FindShortestPath(n3, n1, &bwd)
	if d1 != d2 {
		t.Errorf("asymmetric distances: %v vs %v", d1, d2)
	}
}

func TestNoPathExistsIsPositiveInfinity(t *testing.T) {
	if !math.IsInf(NoPathExists, 1) {
		t.Errorf("NoPathExists = %v; want +Inf", NoPathExists)
	}
}
