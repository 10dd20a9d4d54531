package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPosition struct {
	X, Y float64
}

type testVelocity struct {
	VX, VY float64
}

type testTag struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID从1开始，0 保留为无效ID
	if id1 != 1 || id2 != 2 {
		t.Errorf("Expected IDs 1 and 2, got %d and %d", id1, id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 live entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPosition{}))
	if !found {
		t.Fatal("Component should be found")
	}
	pos := comp.(*testPosition)
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 泛型读取与反射读取返回同一指针
	typed, ok := GetComponent[*testPosition](em, id)
	if !ok || typed != pos {
		t.Error("Generic GetComponent should return the same pointer")
	}

	// 不存在的实体
	if _, ok := GetComponent[*testPosition](em, 999); ok {
		t.Error("Missing entity should not return a component")
	}
}

func TestAddComponentToMissingEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(42, &testPosition{})
	if em.HasComponent(42, reflect.TypeOf(&testPosition{})) {
		t.Error("AddComponent on a missing entity should be a no-op")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPosition{})
	AddComponent(em, id, &testTag{})

	RemoveComponent[*testTag](em, id)
	if HasComponent[*testTag](em, id) {
		t.Error("Tag should be removed")
	}
	if !HasComponent[*testPosition](em, id) {
		t.Error("Position should remain")
	}
}

func TestDestroyEntity_TwoPhase(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{X: 5})

	em.DestroyEntity(id)

	// 清理前组件仍可读取，但不再出现在查询中
	if !em.HasComponent(id, reflect.TypeOf(&testPosition{})) {
		t.Error("Components should remain readable before cleanup")
	}
	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}
	if got := GetEntitiesWith1[*testPosition](em); len(got) != 0 {
		t.Errorf("Marked entity should be excluded from queries, got %v", got)
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 live entities, got %d", em.EntityCount())
	}

	if n := em.RemoveMarkedEntities(); n != 1 {
		t.Errorf("Expected 1 removed entity, got %d", n)
	}
	if em.HasComponent(id, reflect.TypeOf(&testPosition{})) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestDestroyEntity_Idempotent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 同一帧内被多个系统标记（例如子弹同时命中两个敌人）
	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.DestroyEntity(12345)

	if n := em.RemoveMarkedEntities(); n != 1 {
		t.Errorf("Expected 1 removed entity, got %d", n)
	}
	if n := em.RemoveMarkedEntities(); n != 0 {
		t.Errorf("Second cleanup should remove nothing, got %d", n)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPosition{})
	em.AddComponent(id1, &testVelocity{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPosition{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocity{})

	both := GetEntitiesWith2[*testPosition, *testVelocity](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1 with both components, got %v", both)
	}

	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPosition{}))
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}

	none := GetEntitiesWith3[*testPosition, *testVelocity, *testTag](em)
	if len(none) != 0 {
		t.Errorf("Expected no entity with all three components, got %v", none)
	}
}

func TestGetEntitiesWith_SortedByCreation(t *testing.T) {
	em := NewEntityManager()
	var ids []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPosition{X: float64(i)})
		ids = append(ids, id)
	}

	got := GetEntitiesWith1[*testPosition](em)
	if len(got) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("Query order mismatch at %d: got %d, want %d", i, got[i], ids[i])
		}
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	id := em.CreateEntity()
	em.DestroyEntity(id)

	em.Clear()
	if em.EntityCount() != 0 {
		t.Errorf("Expected empty manager, got %d", em.EntityCount())
	}
	if next := em.CreateEntity(); next != 3 {
		t.Errorf("IDs should keep increasing after Clear, got %d", next)
	}
}

func TestTypeOf(t *testing.T) {
	if TypeOf[*testPosition]() != reflect.TypeOf(&testPosition{}) {
		t.Error("TypeOf should match reflect.TypeOf for pointer components")
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 500; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPosition{})
		if i%2 == 0 {
			em.AddComponent(id, &testVelocity{})
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPosition, *testVelocity](em)
	}
}
