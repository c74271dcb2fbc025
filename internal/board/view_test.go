package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_BoardSwitchKeepsMember(t *testing.T) {
	store, _ := loadedStore(t)

	require.NoError(t, store.SelectMember("m1"))
	require.NoError(t, store.SelectTask("t1"))

	require.NoError(t, store.SelectBoard("b2"))

	sel := store.Selection()
	assert.Equal(t, "b2", sel.BoardID)
	assert.Equal(t, "m1", sel.MemberID, "member focus survives board navigation")
	assert.Equal(t, "t1", sel.TaskID)
}

func TestSelectMember_UnknownAndClear(t *testing.T) {
	store, _ := loadedStore(t)

	assert.ErrorIs(t, store.SelectMember("nobody"), ErrNotFound)

	require.NoError(t, store.SelectMember("m2"))
	require.NoError(t, store.SelectMember(""))
	assert.Equal(t, "", store.Selection().MemberID)
}

func TestSelectTask_Unknown(t *testing.T) {
	store, _ := loadedStore(t)

	assert.ErrorIs(t, store.SelectTask("ghost"), ErrNotFound)
	assert.Equal(t, "", store.Selection().TaskID)
}
