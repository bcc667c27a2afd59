package gridmap

import (
	"container/heap"
)

// Pathfinder searches a bounded grid around a fixed obstacle set.
// It holds its own copy of the obstacles, so later changes to the caller's set do not leak in.
type Pathfinder struct {
	Width     int
	Height    int
	obstacles ObstacleSet
}

func NewPathfinder(width, height int, obstacles ObstacleSet) *Pathfinder {
	return &Pathfinder{
		Width:     width,
		Height:    height,
		obstacles: obstacles.Clone(),
	}
}

func (pf *Pathfinder) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < pf.Width && c.Y < pf.Height
}

// IsPassable reports whether c is inside the grid and not blocked.
func (pf *Pathfinder) IsPassable(c Coord) bool {
	return pf.InBounds(c) && !pf.obstacles.Contains(c)
}

// FindPath returns the shortest 4-connected path from start to goal, both included,
// or nil when either endpoint is blocked or out of bounds, or goal is unreachable.
func (pf *Pathfinder) FindPath(start, goal Coord) []Coord {
	return AStar(start, goal, pf)
}

// HasPath reports whether FindPath would return a path.
func (pf *Pathfinder) HasPath(start, goal Coord) bool {
	return pf.FindPath(start, goal) != nil
}

// AStar находит кратчайший путь от start до goal.
// Шаг стоит 1, эвристика манхэттенская, соседи в порядке NeighborDirections.
// При равном приоритете первым извлекается клетка с меньшим X, затем с меньшим Y.
// Родитель клетки меняется только при строго меньшей стоимости.
func AStar(start, goal Coord, pf *Pathfinder) []Coord {
	if !pf.IsPassable(start) || !pf.IsPassable(goal) {
		return nil
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Cell: start, G: 0, Priority: start.Distance(goal)})
	costSoFar := map[Coord]int{start: 0}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.G > costSoFar[current.Cell] {
			continue // устаревшая запись
		}
		if current.Cell == goal {
			return reconstructPath(current)
		}
		for _, neighbor := range current.Cell.Neighbors() {
			if !pf.IsPassable(neighbor) {
				continue
			}
			newCost := current.G + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				heap.Push(pq, &Node{
					Cell:     neighbor,
					G:        newCost,
					Priority: newCost + neighbor.Distance(goal),
					Parent:   current,
				})
			}
		}
	}
	return nil // Нет пути
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Cell     Coord
	G        int
	Priority int
	Parent   *Node
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	if pq[i].Cell.X != pq[j].Cell.X {
		return pq[i].Cell.X < pq[j].Cell.X
	}
	return pq[i].Cell.Y < pq[j].Cell.Y
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Coord {
	path := make([]Coord, node.G+1)
	for i := node.G; node != nil; i-- {
		path[i] = node.Cell
		node = node.Parent
	}
	return path
}
