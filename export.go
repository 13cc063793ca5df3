// SPDX-License-Identifier: EPL-2.0

package voxlab

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/voxlab/artifact"
	"github.com/ik5/voxlab/capture"
)

// ErrNoRecording is returned when there is no take to export.
var ErrNoRecording = errors.New("no recording to export")

// ExportRecording registers a finished take's WAV bytes with store
// under the canonical recording name and returns the handle.
func ExportRecording(store *artifact.Store, rec *capture.Recording) (artifact.Handle, error) {
	if rec == nil || rec.Buffer == nil {
		return "", ErrNoRecording
	}

	name := artifact.RecordingName(time.Now(), rec.Buffer.Rate)
	h := store.Create(rec.WAV, "audio/wav", name)

	logrus.WithFields(logrus.Fields{
		"name":  name,
		"bytes": len(rec.WAV),
	}).Debug("recording exported")

	return h, nil
}
