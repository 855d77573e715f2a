// 双端队列，用于保存会话中最近的计算结果

package deque

type Deque[T any] interface {
	// 队列的长度
	Size() int

	// 正向遍历，f 返回 false 时停止
	Traverse(f func(i int, item T) bool)

	// 在队列头部增加一个元素
	AddFirst(item T)

	// 在队列结尾删除一个元素
	RemoveLast() (T, bool)

	IsFull() bool

	// 按顺序拷贝出全部元素
	Slice() []T
}
