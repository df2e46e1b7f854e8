package engine

import "fmt"

// TaskDef — описание task для построения графа.
type TaskDef struct {
	// ID — уникальный идентификатор task.
	ID string

	// Requires — ID tasks, которые должны завершиться раньше.
	Requires []string
}

// Node — узел в DAG.
type Node struct {
	// ID — идентификатор узла (совпадает с TaskDef.ID).
	ID string

	// InDegree — количество входящих рёбер (зависимостей).
	InDegree int

	// DependsOn — узлы, от которых зависит этот узел.
	DependsOn []*Node

	// Dependents — узлы, которые зависят от этого узла.
	Dependents []*Node

	// index — позиция в исходном списке, задаёт порядок при равенстве.
	index int
}

// DAG — направленный ациклический граф tasks.
type DAG struct {
	// Nodes — все узлы графа (taskID → Node).
	Nodes map[string]*Node

	// RootNodes — узлы без зависимостей (точки входа) в порядке объявления.
	RootNodes []*Node

	// Order — топологически отсортированный список узлов.
	Order []*Node
}

// BuildDAG строит DAG из описаний tasks.
//
// Порядок детерминирован: при равенстве раньше идёт task,
// объявленный раньше.
func BuildDAG(defs []TaskDef) (*DAG, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyTasks
	}

	dag := &DAG{
		Nodes:     make(map[string]*Node, len(defs)),
		RootNodes: make([]*Node, 0),
	}

	// Первый проход: создаём все узлы
	ordered := make([]*Node, 0, len(defs))
	for i, def := range defs {
		if def.ID == "" {
			return nil, NewValidationError("", fmt.Sprintf("task #%d has empty ID", i), ErrEmptyTaskID)
		}
		if _, exists := dag.Nodes[def.ID]; exists {
			return nil, NewValidationError(def.ID, "duplicate task ID", ErrDuplicateTaskID)
		}

		node := &Node{
			ID:         def.ID,
			DependsOn:  make([]*Node, 0),
			Dependents: make([]*Node, 0),
			index:      i,
		}
		dag.Nodes[def.ID] = node
		ordered = append(ordered, node)
	}

	// Второй проход: связываем узлы по зависимостям
	for _, def := range defs {
		node := dag.Nodes[def.ID]
		for _, depID := range def.Requires {
			if depID == def.ID {
				return nil, NewValidationError(def.ID, "task requires itself", ErrSelfDependency)
			}
			depNode, exists := dag.Nodes[depID]
			if !exists {
				return nil, NewValidationError(def.ID,
					fmt.Sprintf("requires unknown task: %s", depID), ErrMissingDependency)
			}
			dag.addEdge(depNode, node)
		}
	}

	// Находим корневые узлы
	for _, node := range ordered {
		if node.InDegree == 0 {
			dag.RootNodes = append(dag.RootNodes, node)
		}
	}

	// Проверяем на циклы и строим топологический порядок
	order, err := dag.topologicalSort()
	if err != nil {
		return nil, err
	}
	dag.Order = order

	return dag, nil
}

// addEdge добавляет ребро между узлами.
// Дополнительно проверяет на дубликаты, чтобы избежать двойного учета InDegree.
func (d *DAG) addEdge(from, to *Node) {
	for _, dep := range to.DependsOn {
		if dep.ID == from.ID {
			return // уже связаны
		}
	}
	from.Dependents = append(from.Dependents, to)
	to.DependsOn = append(to.DependsOn, from)
	to.InDegree++
}

// topologicalSort выполняет топологическую сортировку (алгоритм Кана).
// Возвращает ошибку, если обнаружен цикл.
func (d *DAG) topologicalSort() ([]*Node, error) {
	// Копируем inDegree, чтобы не модифицировать оригинал
	inDegree := make(map[string]int, len(d.Nodes))
	for id, node := range d.Nodes {
		inDegree[id] = node.InDegree
	}

	queue := make([]*Node, len(d.RootNodes))
	copy(queue, d.RootNodes)

	order := make([]*Node, 0, len(d.Nodes))

	for len(queue) > 0 {
		// Извлекаем узел с минимальным index
		best := 0
		for i := range queue {
			if queue[i].index < queue[best].index {
				best = i
			}
		}
		node := queue[best]
		queue = append(queue[:best], queue[best+1:]...)
		order = append(order, node)

		// Уменьшаем inDegree у зависимых узлов
		for _, dependent := range node.Dependents {
			inDegree[dependent.ID]--
			if inDegree[dependent.ID] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	// Если не все узлы обработаны — есть цикл
	if len(order) != len(d.Nodes) {
		return nil, ErrCyclicDependency
	}

	return order, nil
}

// Upstream возвращает task id и все его транзитивные зависимости
// в топологическом порядке. Сам task идёт последним.
func (d *DAG) Upstream(id string) ([]*Node, error) {
	target, ok := d.Nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTask, id)
	}

	needed := map[string]bool{target.ID: true}
	stack := []*Node{target}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dep := range node.DependsOn {
			if !needed[dep.ID] {
				needed[dep.ID] = true
				stack = append(stack, dep)
			}
		}
	}

	nodes := make([]*Node, 0, len(needed))
	for _, node := range d.Order {
		if needed[node.ID] {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// GetNode возвращает узел по ID.
func (d *DAG) GetNode(id string) *Node {
	return d.Nodes[id]
}

// Size возвращает количество узлов в DAG.
func (d *DAG) Size() int {
	return len(d.Nodes)
}
