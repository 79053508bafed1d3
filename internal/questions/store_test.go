package questions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []Entry {
	return []Entry{
		{Role: "Software Engineer", Experience: "Entry,Mid", Question: "Why engineering?"},
		{Role: "Software Engineer", Experience: "Senior", Question: "Tell me about mentoring."},
		{Role: "Data Scientist", Experience: "Entry", Question: "Why data?"},
		{Role: "General", Experience: "Entry,Mid,Senior", Question: "Tell me about yourself."},
	}
}

func TestExperienceLevel(t *testing.T) {
	cases := []struct {
		experience string
		level      string
	}{
		{"0", LevelEntry},
		{"2 years", LevelEntry},
		{"3", LevelMid},
		{"5 years", LevelMid},
		{"6", LevelSenior},
		{"12 years", LevelSenior},
		{"unparseable", LevelEntry}, // no digits counts as zero
	}
	for _, tc := range cases {
		t.Run(tc.experience, func(t *testing.T) {
			assert.Equal(t, tc.level, ExperienceLevel(tc.experience))
		})
	}
}

func TestStoreFilter(t *testing.T) {
	store := NewStore(testEntries())

	t.Run("matches position substring and band", func(t *testing.T) {
		filtered := store.Filter("software engineer", "2 years")
		require.Len(t, filtered, 2) // Entry,Mid engineer entry + General
		assert.Equal(t, "Why engineering?", filtered[0].Question)
		assert.Equal(t, "Tell me about yourself.", filtered[1].Question)
	})

	t.Run("general entries match any position", func(t *testing.T) {
		filtered := store.Filter("Accountant", "1")
		require.Len(t, filtered, 1)
		assert.Equal(t, "General", filtered[0].Role)
	})

	t.Run("band excludes mismatched entries", func(t *testing.T) {
		filtered := store.Filter("Data Scientist", "10 years")
		// the Data Scientist entry is Entry-only; only General survives
		require.Len(t, filtered, 1)
		assert.Equal(t, "General", filtered[0].Role)
	})
}

func TestStorePick(t *testing.T) {
	t.Run("returns a matching question", func(t *testing.T) {
		store := NewStore(testEntries())
		q, err := store.Pick("Software Engineer", "8 years")
		require.NoError(t, err)
		assert.Contains(t, []string{"Tell me about mentoring.", "Tell me about yourself."}, q)
	})

	t.Run("empty string when nothing matches", func(t *testing.T) {
		store := NewStore([]Entry{{Role: "QA Engineer", Experience: "Senior", Question: "q"}})
		q, err := store.Pick("Accountant", "1")
		require.NoError(t, err)
		assert.Empty(t, q)
	})
}

func TestLoadStore(t *testing.T) {
	t.Run("loads dataset file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hr.json")
		data := `[{"role":"General","experience":"Entry","question":"Tell me about yourself."}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		store, err := LoadStore(path)
		require.NoError(t, err)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadStore(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hr.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadStore(path)
		assert.Error(t, err)
	})

	t.Run("empty dataset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hr.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
		_, err := LoadStore(path)
		assert.Error(t, err)
	})
}
