package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/shaiso/Roster/internal/domain"
)

// Ключи вложенных объектов в ответе API.
const (
	keyObjects = "objects"
	keyPerson  = "person"
	keyExtra   = "extra"
)

// Parse декодирует ответ API и разворачивает каждый элемент objects.
//
// Отсутствующий ключ objects даёт пустую таблицу.
func Parse(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	items, _ := payload[keyObjects].([]any)

	table := NewTable(len(items))
	for _, raw := range items {
		item, _ := raw.(map[string]any)
		table.Append(Flatten(item))
	}

	return table, nil
}

// Flatten извлекает поля элемента в плоскую запись.
//
// Поля person и extra поднимаются на верхний уровень. Отсутствующие ключи,
// null и вложенные объекты неверного типа дают nil.
func Flatten(item map[string]any) domain.MemberRecord {
	person := getMap(item, keyPerson)
	extra := getMap(item, keyExtra)

	return domain.MemberRecord{
		SortName:        getString(person, domain.ColumnSortName),
		Name:            getString(person, domain.ColumnName),
		FirstName:       getString(person, domain.ColumnFirstName),
		MiddleName:      getString(person, domain.ColumnMiddleName),
		LastName:        getString(person, domain.ColumnLastName),
		NameMod:         getString(person, domain.ColumnNameMod),
		Nickname:        getString(person, domain.ColumnNickname),
		Description:     getString(item, domain.ColumnDescription),
		LeadershipTitle: getString(item, domain.ColumnLeadershipTitle),
		Party:           getString(item, domain.ColumnParty),
		Address:         getString(extra, domain.ColumnAddress),
		Phone:           getString(item, domain.ColumnPhone),
		Website:         getString(item, domain.ColumnWebsite),
	}
}

// getMap извлекает вложенный объект. Для nil map и неверного типа возвращает nil.
func getMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

// getString извлекает значение и приводит его к строке.
//
// Числа и bool переводятся в текст, массивы и объекты — в JSON.
func getString(m map[string]any, key string) *string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}

	switch val := v.(type) {
	case string:
		return &val
	case json.Number:
		s := val.String()
		return &s
	case bool:
		s := strconv.FormatBool(val)
		return &s
	case float64:
		s := strconv.FormatFloat(val, 'f', -1, 64)
		return &s
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return nil
		}
		s := string(b)
		return &s
	}
}
