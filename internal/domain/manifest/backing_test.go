package manifest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProber returns canned durations by base filename and fails for
// anything not in the map.
type fakeProber struct {
	durations map[string]float64
	probed    []string
}

func (f *fakeProber) Probe(path string) (float64, error) {
	f.probed = append(f.probed, path)
	if d, ok := f.durations[filepath.Base(path)]; ok {
		return d, nil
	}
	return 0, errors.New("bad frame sync")
}

func TestBuildBackingTracks_OnlyMP3FilesProduceEntries(t *testing.T) {
	prober := &fakeProber{durations: map[string]float64{"loop.mp3": 12.5}}
	names := []string{"loop.mp3", "cover.png", "notes.txt", "drums.wav"}

	entries := BuildBackingTracks("tracks", names, "assets/backing_tracks/", prober)
	require.Len(t, entries, 1)
	assert.Equal(t, "assets/backing_tracks/loop.mp3", entries[0].Audio)
	require.NotNil(t, entries[0].Duration)
	assert.Equal(t, 12.5, *entries[0].Duration)

	// Only the mp3 was probed, with its directory joined on.
	require.Len(t, prober.probed, 1)
	assert.Equal(t, filepath.Join("tracks", "loop.mp3"), prober.probed[0])
}

func TestBuildBackingTracks_UnreadableFileKeepsEntryWithNullDuration(t *testing.T) {
	prober := &fakeProber{durations: map[string]float64{"loop.mp3": 12.5}}
	names := []string{"loop.mp3", "broken.mp3"}

	entries := BuildBackingTracks("tracks", names, "assets/backing_tracks/", prober)
	require.Len(t, entries, 2, "probe failure must not drop the entry or abort the run")

	assert.Equal(t, "assets/backing_tracks/broken.mp3", entries[0].Audio)
	assert.Nil(t, entries[0].Duration)
	assert.Equal(t, "assets/backing_tracks/loop.mp3", entries[1].Audio)
	require.NotNil(t, entries[1].Duration)
	assert.Equal(t, 12.5, *entries[1].Duration)
}

func TestBuildBackingTracks_SortedForAnyInputOrder(t *testing.T) {
	prober := &fakeProber{durations: map[string]float64{
		"a.mp3": 1, "b.mp3": 2, "c.mp3": 3,
	}}
	perms := [][]string{
		{"c.mp3", "a.mp3", "b.mp3"},
		{"b.mp3", "c.mp3", "a.mp3"},
	}

	for _, names := range perms {
		entries := BuildBackingTracks("tracks", names, "assets/backing_tracks/", prober)
		require.Len(t, entries, 3)
		assert.Equal(t, "assets/backing_tracks/a.mp3", entries[0].Audio)
		assert.Equal(t, "assets/backing_tracks/b.mp3", entries[1].Audio)
		assert.Equal(t, "assets/backing_tracks/c.mp3", entries[2].Audio)
	}
}
