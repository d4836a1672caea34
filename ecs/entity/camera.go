package entity

import (
	"fmt"

	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
)

// DefaultCameraPrefab is used when a board does not name its camera.
const DefaultCameraPrefab = "camera.yaml"

func NewCamera(w *ecs.World, prefab string) (ecs.Entity, error) {
	if prefab == "" {
		prefab = DefaultCameraPrefab
	}
	camera, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	if !ecs.Has(w, camera, component.CameraComponent.Kind()) {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: prefab %q has no camera component", prefab)
	}
	if !ecs.Has(w, camera, component.CameraTagComponent.Kind()) {
		if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
			ecs.DestroyEntity(w, camera)
			return 0, fmt.Errorf("camera: add camera tag: %w", err)
		}
	}
	if !ecs.Has(w, camera, component.TransformComponent.Kind()) {
		if err := SetEntityTransform(w, camera, 0, 0, 0); err != nil {
			ecs.DestroyEntity(w, camera)
			return 0, fmt.Errorf("camera: add transform: %w", err)
		}
	}
	return camera, nil
}

func NewCameraAt(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	camera, err := NewCamera(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, camera, x, y, 0); err != nil {
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}
	return camera, nil
}
