// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/voxlab/audio"
	"github.com/ik5/voxlab/formats/vorbis"
)

// ExampleDecoder_Decode shows how to decode an Ogg Vorbis file.
func ExampleDecoder_Decode() {
	decoder := vorbis.Decoder{}

	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded Ogg Vorbis: %d Hz, %d channels\n",
		src.SampleRate(), src.Channels())
}

// ExampleDecoder_Decode_processingChain demonstrates decoding into a
// 16kHz mono stream.
func ExampleDecoder_Decode_processingChain() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	decoder := vorbis.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	mono := audio.NewMonoMixer(src)
	resampled := audio.NewResampler(mono, 16000)

	buf := make([]float32, 1024)
	var total int
	for {
		n, err := resampled.ReadSamples(buf)
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Processed %d samples\n", total)
}

// ExampleDecoder_Decode_errorHandling shows handling of invalid data.
func ExampleDecoder_Decode_errorHandling() {
	decoder := vorbis.Decoder{}

	invalidData := bytes.NewReader([]byte("not an ogg stream"))
	_, err := decoder.Decode(invalidData)
	if err != nil {
		fmt.Println("decode failed")
		return
	}

	fmt.Println("Ogg Vorbis decoded successfully")
	// Output: decode failed
}

// ExampleDecoder_Sniff shows format detection on a byte prefix.
func ExampleDecoder_Sniff() {
	decoder := vorbis.Decoder{}

	fmt.Println(decoder.Sniff([]byte("OggS\x00\x02\x00\x00")))
	fmt.Println(decoder.Sniff([]byte("RIFFxxxxWAVE")))
	// Output:
	// true
	// false
}
