package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

func InitTree(root GameObject) error {
	if err := root.Init(); err != nil {
		return fmt.Errorf("failed to initialize object %s: %v", root.GetID(), err)
	}
	for _, child := range root.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

func DestroyTree(root GameObject) error {
	for _, child := range root.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := root.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy object %s: %v", root.GetID(), err)
	}
	return nil
}

func UpdateTree(root GameObject) error {
	if err := root.Update(); err != nil {
		return fmt.Errorf("failed to update object %s: %v", root.GetID(), err)
	}
	// children may remove themselves while updating
	children := append([]GameObject(nil), root.GetChildren()...)
	for _, child := range children {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

func DrawTree(root GameObject, screen *ebiten.Image) {
	root.Draw(screen)
	for _, child := range root.GetChildren() {
		DrawTree(child, screen)
	}
}
