package deque

type ListDeque[T any] struct {
	head *node[T]
	tail *node[T]

	size     int
	capacity int
}

type node[T any] struct {
	val  T
	pre  *node[T]
	next *node[T]
}

// 工厂方法，capacity <= 0 表示不限长度
func NewListDeque[T any](capacity int) *ListDeque[T] {
	head := &node[T]{}
	tail := &node[T]{}
	head.next = tail
	tail.pre = head

	return &ListDeque[T]{
		head:     head,
		tail:     tail,
		size:     0,
		capacity: capacity,
	}
}

func (ld *ListDeque[T]) Size() int {
	return ld.size
}

func (ld *ListDeque[T]) Traverse(f func(i int, item T) bool) {
	i := 0
	for iter := ld.head.next; iter != ld.tail; iter = iter.next {
		if !f(i, iter.val) {
			return
		}
		i++
	}
}

func (ld *ListDeque[T]) RemoveLast() (T, bool) {
	var zero T
	if ld.size == 0 {
		return zero, false
	}
	n := ld.tail.pre
	ld.tail.pre = n.pre
	ld.tail.pre.next = ld.tail
	ld.size--
	return n.val, true
}

// 队列满时丢弃队尾元素
func (ld *ListDeque[T]) AddFirst(item T) {
	if ld.IsFull() {
		ld.RemoveLast()
	}
	newNode := &node[T]{val: item}
	tmp := ld.head.next
	ld.head.next = newNode
	newNode.pre = ld.head
	newNode.next = tmp
	tmp.pre = newNode
	ld.size++
}

func (ld *ListDeque[T]) IsFull() bool {
	return ld.capacity > 0 && ld.size == ld.capacity
}

// 按顺序拷贝出全部元素
func (ld *ListDeque[T]) Slice() []T {
	items := make([]T, 0, ld.size)
	ld.Traverse(func(_ int, item T) bool {
		items = append(items, item)
		return true
	})
	return items
}
