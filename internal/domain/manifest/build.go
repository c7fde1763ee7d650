package manifest

import "github.com/corey/soundpack/internal/ports"

// Manifest-internal path roots. These are the prefixes baked into the output
// documents; clients resolve audio paths against them at load time.
const (
	soundAudioPrefix   = "sounds/"
	assetIconPrefix    = "assets/sounds/"
	backingTrackPrefix = "assets/backing_tracks/"
)

// BuildSoundlist scans soundDir and writes the flat manifest to outPath.
// Returns the number of sound entries written.
func BuildSoundlist(soundDir, outPath string) (int, error) {
	names, err := ListDir(soundDir)
	if err != nil {
		return 0, err
	}
	sounds := BuildSounds(names, soundAudioPrefix, soundAudioPrefix)
	if err := WriteDoc(outPath, sounds); err != nil {
		return 0, err
	}
	return len(sounds), nil
}

// BuildAudioMap scans both asset directories and writes the composite
// manifest to outPath. Both directory scans happen before the write, so a
// missing backing-track directory aborts the run without touching outPath.
// Returns the backing-track and sound entry counts.
func BuildAudioMap(soundDir, backingDir, outPath string, prober ports.DurationProber) (int, int, error) {
	soundNames, err := ListDir(soundDir)
	if err != nil {
		return 0, 0, err
	}
	backingNames, err := ListDir(backingDir)
	if err != nil {
		return 0, 0, err
	}

	doc := AudioMap{
		BackingTracks: BuildBackingTracks(backingDir, backingNames, backingTrackPrefix, prober),
		Sounds:        BuildSounds(soundNames, soundAudioPrefix, assetIconPrefix),
	}
	if err := WriteDoc(outPath, doc); err != nil {
		return 0, 0, err
	}
	return len(doc.BackingTracks), len(doc.Sounds), nil
}
