// SPDX-License-Identifier: EPL-2.0

package capture_test

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ik5/voxlab/audio"
	"github.com/ik5/voxlab/capture"
	"github.com/ik5/voxlab/formats/wav"
)

// ExampleSession shows the shape of a recording flow. It does not run
// because it needs a live input device.
func ExampleSession() {
	engine := capture.NewEngine()
	defer engine.Close()

	session := capture.NewSession(engine, capture.Config{
		MinDuration: time.Second,
		MaxDuration: 2 * time.Minute,
	})

	if err := session.Start(context.Background()); err != nil {
		fmt.Println("cannot record:", err)
		return
	}

	// Poll the live meter while the take runs, then collect it.
	fmt.Printf("level: %.2f\n", session.Level())

	rec, err := session.Stop()
	if err != nil {
		fmt.Println("take rejected:", err)
		return
	}
	fmt.Println("recorded", rec.Duration)
}

func ExampleLoadReader() {
	blob := wav.Encode(audio.NewSampleBuffer(make([]float32, 8000), 8000))

	rec, err := capture.LoadReader(bytes.NewReader(blob), "silence.wav")
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}

	fmt.Printf("%d samples, %s\n", rec.Buffer.Len(), rec.Duration)
	// Output: 8000 samples, 1s
}
