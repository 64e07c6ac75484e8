package fennecs

var _ Cache[any] = &SimpleCache[any]{}

func (c *SimpleCache[T]) GetItem(index uint32) (T, bool) {
	if int(index) >= len(c.items) || !c.present[index] {
		var zero T
		return zero, false
	}
	return c.items[index], true
}

func (c *SimpleCache[T]) Register(index uint32, item T) error {
	if int(index) >= c.maxCapacity {
		return CacheCapacityError{Index: index, Capacity: c.maxCapacity}
	}
	if int(index) >= len(c.items) {
		grown := make([]T, index+1)
		copy(grown, c.items)
		c.items = grown
		present := make([]bool, index+1)
		copy(present, c.present)
		c.present = present
	}
	if !c.present[index] {
		c.count++
	}
	c.items[index] = item
	c.present[index] = true
	return nil
}

func (c *SimpleCache[T]) Len() int {
	return c.count
}

func (c *SimpleCache[T]) Clear() {
	c.items = nil
	c.present = nil
	c.count = 0
}
