// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio processing primitives:
// the Source stream interface, sample-rate conversion, channel
// mixdown, decoded-take buffers, and the format decoder registry.
//
// # Source Interface
//
// The Source interface is the foundation every decoder and processor
// implements, so stages chain into pipelines:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Buffers
//
// A SampleBuffer holds a fully decoded mono take. BufferSource adapts a
// buffer back into a Source, and CollectMono drains any Source into a
// buffer, folding channels along the way:
//
//	buf, err := audio.CollectMono(src)
//
// # Resampling
//
// Two entry points share the same cubic interpolation core. The
// streaming Resampler converts between rates as data flows:
//
//	resampler := audio.NewResampler(source, 16000)
//	n, err := resampler.ReadSamples(buf)
//
// The offline Resample converts a whole buffer at once and never
// fails; identical rates return the input buffer untouched, and a
// linear interpolation fallback covers the cases the cubic path
// cannot:
//
//	out := audio.Resample(buf, 16000)
//
// # Channel Mixing
//
// MonoMixer converts multi-channel audio to mono by averaging each
// frame's channels; MixDown does the same fold over a raw interleaved
// slice. Voice processing downstream assumes mono input.
//
// # Format Registry
//
// The registry maps format keys to decoders and is safe for concurrent
// use. Decoders that implement Sniffer also participate in content
// detection when the file extension is missing or wrong:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	name, dec, ok := registry.Detect(prefix)
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0] everywhere; 0.0 is silence. The
// normalized form keeps intermediate processing independent of source
// bit depths.
//
// # Error Handling
//
// Streaming functions return io.EOF when a stream is exhausted; any
// other error means the source or the pipeline failed:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // process n samples
//	}
package audio
