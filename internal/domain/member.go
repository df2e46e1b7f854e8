package domain

// Имена колонок таблицы членов Палаты представителей.
const (
	ColumnSortName        = "sortname"
	ColumnName            = "name"
	ColumnFirstName       = "firstname"
	ColumnMiddleName      = "middlename"
	ColumnLastName        = "lastname"
	ColumnNameMod         = "namemod"
	ColumnNickname        = "nickname"
	ColumnDescription     = "description"
	ColumnLeadershipTitle = "leadership_title"
	ColumnParty           = "party"
	ColumnAddress         = "address"
	ColumnPhone           = "phone"
	ColumnWebsite         = "website"
)

// Columns — фиксированный порядок колонок выходной таблицы.
// Порядок является частью формата файла и не меняется.
var Columns = []string{
	ColumnSortName,
	ColumnName,
	ColumnFirstName,
	ColumnMiddleName,
	ColumnLastName,
	ColumnNameMod,
	ColumnNickname,
	ColumnDescription,
	ColumnLeadershipTitle,
	ColumnParty,
	ColumnAddress,
	ColumnPhone,
	ColumnWebsite,
}

// MemberRecord — плоская запись о члене Палаты.
//
// Каждое поле опционально: nil означает отсутствие значения в источнике.
// Поля из person и extra в ответе API поднимаются на верхний уровень.
type MemberRecord struct {
	SortName        *string `json:"sortname"`
	Name            *string `json:"name"`
	FirstName       *string `json:"firstname"`
	MiddleName      *string `json:"middlename"`
	LastName        *string `json:"lastname"`
	NameMod         *string `json:"namemod"`
	Nickname        *string `json:"nickname"`
	Description     *string `json:"description"`
	LeadershipTitle *string `json:"leadership_title"`
	Party           *string `json:"party"`
	Address         *string `json:"address"`
	Phone           *string `json:"phone"`
	Website         *string `json:"website"`
}

// fields возвращает указатели на поля записи в порядке Columns.
func (m *MemberRecord) fields() []**string {
	return []**string{
		&m.SortName,
		&m.Name,
		&m.FirstName,
		&m.MiddleName,
		&m.LastName,
		&m.NameMod,
		&m.Nickname,
		&m.Description,
		&m.LeadershipTitle,
		&m.Party,
		&m.Address,
		&m.Phone,
		&m.Website,
	}
}

// Values возвращает значения записи в порядке Columns.
func (m MemberRecord) Values() []*string {
	fields := m.fields()
	values := make([]*string, len(fields))
	for i, f := range fields {
		values[i] = *f
	}
	return values
}

// Get возвращает значение колонки по имени.
// Для неизвестной колонки возвращает nil, false.
func (m MemberRecord) Get(column string) (*string, bool) {
	for i, name := range Columns {
		if name == column {
			return *m.fields()[i], true
		}
	}
	return nil, false
}

// MemberRecordFromValues собирает запись из значений в порядке Columns.
// Лишние значения игнорируются, недостающие остаются nil.
func MemberRecordFromValues(values []*string) MemberRecord {
	var m MemberRecord
	for i, f := range m.fields() {
		if i >= len(values) {
			break
		}
		*f = values[i]
	}
	return m
}

// StringPtr возвращает указатель на копию строки.
func StringPtr(s string) *string {
	return &s
}

// StringValue разыменовывает указатель, nil превращается в "".
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
