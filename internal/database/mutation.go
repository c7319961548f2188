package database

import (
	"fmt"
	"regexp"
	"strings"

	"mediasocial/internal/common"

	"gorm.io/gorm"
)

var identRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Column is one assignment of a Mutation. Absent optional columns are kept so
// the declaration order stays visible, but they never reach the SQL.
type Column struct {
	Name    string
	Value   interface{}
	Present bool
}

// Mutation collects required and optional column assignments in the order
// they are declared and renders UPDATE / INSERT statements from them.
type Mutation struct {
	columns []Column
}

func NewMutation() *Mutation {
	return &Mutation{}
}

// Set declares a required column.
func (m *Mutation) Set(name string, value interface{}) *Mutation {
	m.columns = append(m.columns, Column{Name: name, Value: value, Present: true})
	return m
}

// SetIfPresent declares an optional column, written only when value is non-nil.
func SetIfPresent[T any](m *Mutation, name string, value *T) *Mutation {
	if value == nil {
		m.columns = append(m.columns, Column{Name: name})
		return m
	}
	m.columns = append(m.columns, Column{Name: name, Value: *value, Present: true})
	return m
}

// Assignments returns the columns that will be written, in declaration order.
func (m *Mutation) Assignments() []Column {
	out := make([]Column, 0, len(m.columns))
	for _, c := range m.columns {
		if c.Present {
			out = append(out, c)
		}
	}
	return out
}

// UpdateSQL renders `UPDATE table SET a = ?, b = ? WHERE <where>`.
func (m *Mutation) UpdateSQL(table, where string, whereArgs ...interface{}) (string, []interface{}, error) {
	cols, err := m.checked(table)
	if err != nil {
		return "", nil, err
	}
	if strings.TrimSpace(where) == "" {
		return "", nil, fmt.Errorf("update %s: missing where clause", table)
	}

	sets := make([]string, len(cols))
	args := make([]interface{}, 0, len(cols)+len(whereArgs))
	for i, c := range cols {
		sets[i] = c.Name + " = ?"
		args = append(args, c.Value)
	}
	args = append(args, whereArgs...)

	return fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(sets, ", "), where), args, nil
}

// InsertSQL renders `INSERT INTO table (a, b) VALUES (?, ?)`.
func (m *Mutation) InsertSQL(table string) (string, []interface{}, error) {
	cols, err := m.checked(table)
	if err != nil {
		return "", nil, err
	}

	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		marks[i] = "?"
		args[i] = c.Value
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(names, ", "), strings.Join(marks, ", ")), args, nil
}

// ExecUpdate runs the update on tx and returns the affected row count.
func (m *Mutation) ExecUpdate(tx *gorm.DB, table, where string, whereArgs ...interface{}) (int64, error) {
	query, args, err := m.UpdateSQL(table, where, whereArgs...)
	if err != nil {
		return 0, err
	}
	result := tx.Exec(query, args...)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update %s: %w", table, result.Error)
	}
	return result.RowsAffected, nil
}

// ExecUpdateExisting runs the update and reports common.ErrNotFound when no row
// matches where. MySQL does not count rows whose values did not change, so a
// zero count is confirmed with a lookup before it is treated as missing.
func (m *Mutation) ExecUpdateExisting(tx *gorm.DB, table, where string, whereArgs ...interface{}) error {
	n, err := m.ExecUpdate(tx, table, where, whereArgs...)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var found int64
	if err := tx.Table(table).Where(where, whereArgs...).Count(&found).Error; err != nil {
		return fmt.Errorf("failed to check %s: %w", table, err)
	}
	if found == 0 {
		return fmt.Errorf("%s: %w", table, common.ErrNotFound)
	}
	return nil
}

func (m *Mutation) ExecInsert(tx *gorm.DB, table string) (int64, error) {
	query, args, err := m.InsertSQL(table)
	if err != nil {
		return 0, err
	}
	result := tx.Exec(query, args...)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, result.Error)
	}
	return result.RowsAffected, nil
}

func (m *Mutation) checked(table string) ([]Column, error) {
	if !identRegex.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	cols := m.Assignments()
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s: %w", table, common.ErrNoColumns)
	}
	for _, c := range cols {
		if !identRegex.MatchString(c.Name) {
			return nil, fmt.Errorf("invalid column name %q", c.Name)
		}
	}
	return cols, nil
}
