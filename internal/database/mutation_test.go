package database

import (
	"errors"
	"testing"

	"mediasocial/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMutation_UpdateSQL(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *Mutation
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name: "required only",
			build: func() *Mutation {
				m := NewMutation().Set("user_activity", "Active").Set("level_name", "User")
				SetIfPresent[string](m, "description", nil)
				SetIfPresent[string](m, "pfp_url", nil)
				return m
			},
			wantSQL:  "UPDATE users SET user_activity = ?, level_name = ? WHERE user_id = ?",
			wantArgs: []interface{}{"Active", "User", uint64(3)},
		},
		{
			name: "optional columns keep declaration order",
			build: func() *Mutation {
				m := NewMutation().Set("user_activity", "Away").Set("level_name", "Admin")
				SetIfPresent(m, "description", strPtr("hello"))
				SetIfPresent(m, "pfp_url", strPtr("me.png"))
				return m
			},
			wantSQL:  "UPDATE users SET user_activity = ?, level_name = ?, description = ?, pfp_url = ? WHERE user_id = ?",
			wantArgs: []interface{}{"Away", "Admin", "hello", "me.png", uint64(3)},
		},
		{
			name: "absent optional between present ones is skipped",
			build: func() *Mutation {
				m := NewMutation()
				SetIfPresent(m, "description", strPtr("d"))
				SetIfPresent[string](m, "pfp_url", nil)
				SetIfPresent(m, "email", strPtr("e@x.io"))
				return m
			},
			wantSQL:  "UPDATE users SET description = ?, email = ? WHERE user_id = ?",
			wantArgs: []interface{}{"d", "e@x.io", uint64(3)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := tc.build().UpdateSQL("users", "user_id = ?", uint64(3))
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, sql)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestMutation_NoColumns(t *testing.T) {
	m := NewMutation()
	SetIfPresent[string](m, "title", nil)

	_, _, err := m.UpdateSQL("posts", "post_id = ?", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoColumns))

	_, _, err = m.InsertSQL("themes")
	assert.True(t, errors.Is(err, common.ErrNoColumns))
}

func TestMutation_RejectsBadIdentifiers(t *testing.T) {
	_, _, err := NewMutation().Set("title; drop", "x").UpdateSQL("posts", "post_id = ?", 1)
	assert.Error(t, err)

	_, _, err = NewMutation().Set("title", "x").UpdateSQL("Posts`", "post_id = ?", 1)
	assert.Error(t, err)

	_, _, err = NewMutation().Set("title", "x").UpdateSQL("posts", "")
	assert.Error(t, err)
}

func TestMutation_InsertSQL(t *testing.T) {
	m := NewMutation().Set("user_id", uint64(5)).Set("color1", "#000")
	SetIfPresent(m, "color2", strPtr("#111"))
	SetIfPresent[string](m, "color3", nil)
	SetIfPresent(m, "font1", strPtr("Roboto"))

	sql, args, err := m.InsertSQL("themes")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO themes (user_id, color1, color2, font1) VALUES (?, ?, ?, ?)", sql)
	assert.Equal(t, []interface{}{uint64(5), "#000", "#111", "Roboto"}, args)
	assert.Len(t, m.Assignments(), 4)
}

func TestPairKey(t *testing.T) {
	assert.Equal(t, "2:9", PairKey(9, 2))
	assert.Equal(t, PairKey(4, 7), PairKey(7, 4))
	assert.Equal(t, "3:3", PairKey(3, 3))
}
