// Package roster загружает список членов Палаты представителей
// и превращает его в плоскую таблицу.
//
// Включает:
//   - fetch.go   — HTTP запрос к API
//   - flatten.go — разворачивание вложенного JSON в MemberRecord
//   - table.go   — упорядоченная таблица записей
//   - csv.go     — запись и чтение CSV
//   - check.go   — самопроверка результата на известных данных
//   - file.go    — fetch + check + запись файла одним вызовом
package roster
