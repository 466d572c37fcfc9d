package repository

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/Rohithsilent/P-o-P/internal/model"

	"github.com/go-playground/assert/v2"
)

func TestCommentFiles_SaveLoadRoundTrip(t *testing.T) {
	files := NewCommentFiles(t.TempDir())
	comments := []model.Comment{
		{Username: "@ana", Text: "Loved it,\nespecially the \"intro\"", Likes: 12, PublishedAt: "2024-03-01T10:00:00Z", ReplyCount: 2},
		{Username: "@bo", Text: "", Likes: 0, PublishedAt: "2024-03-02T11:30:00Z", ReplyCount: 0},
	}

	path, err := files.Save("dQw4w9WgXcQ", comments)
	assert.Equal(t, nil, err)
	assert.Equal(t, filepath.Join(files.Dir, "dQw4w9WgXcQ.csv"), path)

	got, err := files.Load(path)
	assert.Equal(t, nil, err)
	assert.Equal(t, comments, got)
}

func TestCommentFiles_WritesHeader(t *testing.T) {
	files := NewCommentFiles(t.TempDir())
	path, err := files.Save("abc", nil)
	assert.Equal(t, nil, err)

	raw, err := os.ReadFile(path)
	assert.Equal(t, nil, err)
	assert.Equal(t, "Username,Comment,Likes,Published At,Reply Count\n", string(raw))
}

func TestCommentFiles_LoadToleratesBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vid.csv")
	content := "\uFEFFUsername,Comment,Likes,Published At,Reply Count\n@x,great video,n/a,2024-01-01T00:00:00Z,3\n"
	assert.Equal(t, nil, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewCommentFiles(dir).Load(path)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "@x", got[0].Username)
	assert.Equal(t, "great video", got[0].Text)
	assert.Equal(t, int64(0), got[0].Likes)
	assert.Equal(t, int64(3), got[0].ReplyCount)
}

func TestCommentFiles_LoadMissingCommentColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vid.csv")
	assert.Equal(t, nil, os.WriteFile(path, []byte("Username,Likes\n@x,1\n"), 0o644))

	_, err := NewCommentFiles(dir).Load(path)
	assert.NotEqual(t, nil, err)
}

func TestCommentFiles_PruneExcept(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"old1.csv", "old2.csv", "keep.csv", "notes.txt"} {
		assert.Equal(t, nil, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	deleted, err := NewCommentFiles(dir).PruneExcept("keep")
	assert.Equal(t, nil, err)
	sort.Strings(deleted)
	assert.Equal(t, []string{"old1.csv", "old2.csv"}, deleted)

	entries, err := os.ReadDir(dir)
	assert.Equal(t, nil, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	sort.Strings(left)
	assert.Equal(t, []string{"keep.csv", "notes.txt"}, left)
}
