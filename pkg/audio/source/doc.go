// ABOUTME: Audio source package for container file input
// ABOUTME: Provides the Source interface and WAV/MP3/FLAC implementations
// Package source reads audio container files as float64 PCM streams.
//
// Open dispatches on the file extension and returns a Source delivering
// interleaved samples at the container's native rate. ReadAll drains a
// source into an audio.Buffer; callers that need mono fold it down with
// audio.Downmix.
//
// Example:
//
//	src, err := source.Open("speech.flac")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	buf, err := source.ReadAll(src)
//	mono := audio.Downmix(buf.Samples, buf.Format.Channels)
package source
