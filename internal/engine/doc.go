// Package engine строит граф зависимостей tasks.
//
// Включает:
//   - dag.go    — построение и обход DAG (directed acyclic graph)
//   - errors.go — ошибки валидации графа
//
// Engine отвечает за понимание структуры pipeline и определение
// порядка выполнения tasks на основе их зависимостей.
package engine
