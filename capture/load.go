// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ik5/voxlab/audio"
	"github.com/ik5/voxlab/formats/aiff"
	"github.com/ik5/voxlab/formats/flac"
	"github.com/ik5/voxlab/formats/mp3"
	"github.com/ik5/voxlab/formats/vorbis"
	"github.com/ik5/voxlab/formats/wav"
)

// registry serves uploads; every format the module decodes is
// registered under its common extensions.
var registry = newRegistry()

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aifc", aiff.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

// LoadFile decodes an audio file into a Recording, picking the decoder
// by extension first and by content sniffing when that fails.
func LoadFile(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return loadBytes(data, filepath.Base(path))
}

// LoadReader decodes a clip from r into a Recording. name is used for
// extension lookup only; it does not need to exist on disk.
func LoadReader(r io.Reader, name string) (*Recording, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return loadBytes(data, name)
}

func loadBytes(data []byte, name string) (*Recording, error) {
	var decodeErr error

	if dec, ok := registry.Get(formatKey(name)); ok {
		rec, err := decodeAs(dec, data)
		if err == nil {
			return rec, nil
		}
		decodeErr = err
	}

	prefix := data
	if len(prefix) > audio.SniffLen {
		prefix = prefix[:audio.SniffLen]
	}

	if key, dec, ok := registry.Detect(prefix); ok {
		rec, err := decodeAs(dec, data)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"name":   name,
				"format": key,
			}).Debug("decoded clip by sniffing")
			return rec, nil
		}
		decodeErr = err
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, decodeErr)
	}

	return nil, fmt.Errorf("%w: unrecognized format %q", ErrDecodeFailed, name)
}

func decodeAs(dec audio.Decoder, data []byte) (*Recording, error) {
	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer src.Close()

	buf, err := audio.CollectMono(src)
	if err != nil {
		return nil, err
	}

	return &Recording{
		Buffer:   buf,
		WAV:      wav.Encode(buf),
		Duration: buf.Duration(),
	}, nil
}

func formatKey(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
