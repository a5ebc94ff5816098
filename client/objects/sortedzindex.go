package objects

import (
	"fmt"
	"sort"
)

// SortedZIndexObject is a GameObject that keeps its children sorted by z-index,
// so that DrawTree paints higher z-indices on top. Children with equal z-index keep
// their insertion order.
type SortedZIndexObject struct {
	*BaseObject

	// sorted is a list of child objects sorted by z-index.
	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
		sorted:     make([]GameObject, 0),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if err := o.BaseObject.AddChild(id, child); err != nil {
		return err
	}
	child.SetParent(o)
	i := sort.Search(len(o.sorted), func(i int) bool {
		return o.sorted[i].GetZIndex() > child.GetZIndex()
	})
	o.sorted = append(o.sorted, nil)
	copy(o.sorted[i+1:], o.sorted[i:])
	o.sorted[i] = child
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	if err := o.BaseObject.RemoveChild(id); err != nil {
		return err
	}
	for i, obj := range o.sorted {
		if obj.GetID() == id {
			o.sorted = append(o.sorted[:i], o.sorted[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("child %s not found in sorted list", id)
}

func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}
