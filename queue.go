package geodes

// stateQueue is a bounded min-heap: the root is the worst state kept so far,
// so popping it after each push leaves the best ones.
type stateQueue []State

func (queue stateQueue) Len() int           { return len(queue) }
func (queue stateQueue) Less(i, j int) bool { return compareStates(queue[i], queue[j]) > 0 }
func (queue stateQueue) Swap(i, j int)      { queue[i], queue[j] = queue[j], queue[i] }

func (queue *stateQueue) Push(x any) {
	*queue = append(*queue, x.(State))
}

func (queue *stateQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}
