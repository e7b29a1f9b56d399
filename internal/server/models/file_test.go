package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentID_UnmarshalNumberZero(t *testing.T) {
	var p ParentID
	require.NoError(t, json.Unmarshal([]byte(`0`), &p))
	assert.True(t, p.IsRoot())
}

func TestParentID_UnmarshalStringZero(t *testing.T) {
	var p ParentID
	require.NoError(t, json.Unmarshal([]byte(`"0"`), &p))
	assert.True(t, p.IsRoot())
}

func TestParentID_UnmarshalFolderID(t *testing.T) {
	var p ParentID
	require.NoError(t, json.Unmarshal([]byte(`"64f1c0ffee"`), &p))
	assert.False(t, p.IsRoot())
	assert.Equal(t, ParentID("64f1c0ffee"), p)
}

func TestParentID_UnmarshalNull(t *testing.T) {
	var p ParentID
	require.NoError(t, json.Unmarshal([]byte(`null`), &p))
	assert.True(t, p.IsRoot())
}

func TestParentID_MarshalRootAsNumber(t *testing.T) {
	b, err := json.Marshal(RootParent)
	require.NoError(t, err)
	assert.Equal(t, "0", string(b))
}

func TestParentID_MarshalFolderIDAsString(t *testing.T) {
	b, err := json.Marshal(ParentID("abc123"))
	require.NoError(t, err)
	assert.Equal(t, `"abc123"`, string(b))
}

func TestParseParentID(t *testing.T) {
	assert.True(t, ParseParentID("").IsRoot())
	assert.True(t, ParseParentID("0").IsRoot())
	assert.True(t, ParseParentID("000").IsRoot())
	assert.Equal(t, ParentID("abc"), ParseParentID("abc"))
}

func TestFile_JSONOmitsLocalPathForFolders(t *testing.T) {
	f := File{ID: "1", UserID: "u", Name: "docs", Type: TypeFolder, ParentID: RootParent}
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "localPath")
	assert.Contains(t, string(b), `"parentId":0`)
}

func TestValidType(t *testing.T) {
	assert.True(t, ValidType(TypeFolder))
	assert.True(t, ValidType(TypeFile))
	assert.True(t, ValidType(TypeImage))
	assert.False(t, ValidType("video"))
	assert.False(t, ValidType(""))
}
