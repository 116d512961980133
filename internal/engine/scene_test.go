package engine

import "testing"

func TestSceneAddRemove(t *testing.T) {
	scene := NewScene("Test")
	a := NewEntity("A")
	b := NewEntity("B")
	scene.Add(a)
	scene.Add(b)

	if scene.FindByName("A") != a {
		t.Error("FindByName should return the added entity")
	}

	scene.Remove(a)
	if scene.FindByName("A") != nil {
		t.Error("removed entity should not be findable")
	}
	if len(scene.Entities) != 1 {
		t.Errorf("scene has %d entities, want 1", len(scene.Entities))
	}
}

func TestSceneWalkVisitsChildrenAfterParents(t *testing.T) {
	scene := NewScene("Test")
	root := NewEntity("Root")
	child := NewEntity("Child")
	grandchild := NewEntity("Grandchild")
	root.AddChild(child)
	child.AddChild(grandchild)
	scene.Add(root)

	var order []string
	scene.Walk(func(e *Entity) { order = append(order, e.Name) })

	want := []string{"Root", "Child", "Grandchild"}
	if len(order) != len(want) {
		t.Fatalf("Walk visited %d entities, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Walk order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestEventInvokeOrder(t *testing.T) {
	var e EventWithArg[int]
	var got []int
	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) { got = append(got, v*10) })
	e.Invoke(3)

	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Errorf("listeners fired %v, want [3 30]", got)
	}
}
