package recorder

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/vitalslab/vitals-cli/internal/models"
)

// Replayer reads and replays snapshots from an NDJSON file
type Replayer struct {
	filename      string
	speed         float64
	loop          bool
	snapshotCount int
	firstSnapshot *models.Snapshot
	loaded        bool
}

// NewReplayer creates a new replayer
func NewReplayer(filename string, speed float64, loop bool) *Replayer {
	return &Replayer{
		filename: filename,
		speed:    speed,
		loop:     loop,
	}
}

// loadMetadata reads the file once to cache count and first snapshot
func (r *Replayer) loadMetadata() error {
	if r.loaded {
		return nil
	}

	file, err := os.Open(r.filename)
	if err != nil {
		return fmt.Errorf("failed to open recording file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	r.snapshotCount = 0

	for scanner.Scan() {
		r.snapshotCount++
		if r.snapshotCount == 1 {
			var snapshot models.Snapshot
			if err := json.Unmarshal(scanner.Bytes(), &snapshot); err != nil {
				return fmt.Errorf("failed to parse first snapshot: %w", err)
			}
			r.firstSnapshot = &snapshot
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	r.loaded = true
	return nil
}

// Replay reads snapshots and sends them to the output channel with timing
func (r *Replayer) Replay(ctx context.Context, output chan<- models.Snapshot) error {
	for {
		if err := r.replayOnce(ctx, output); err != nil {
			return err
		}

		if !r.loop {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			// Continue looping
		}
	}

	return nil
}

func (r *Replayer) replayOnce(ctx context.Context, output chan<- models.Snapshot) error {
	file, err := os.Open(r.filename)
	if err != nil {
		return fmt.Errorf("failed to open recording file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var lastTimestamp time.Time
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		var snapshot models.Snapshot
		if err := json.Unmarshal(scanner.Bytes(), &snapshot); err != nil {
			return fmt.Errorf("failed to parse snapshot at line %d: %w", lineNum, err)
		}

		// Parse timestamp
		timestamp, err := time.Parse(time.RFC3339Nano, snapshot.GeneratedAt)
		if err != nil {
			return fmt.Errorf("failed to parse timestamp at line %d: %w", lineNum, err)
		}

		// Calculate delay
		if lineNum == 1 {
			lastTimestamp = timestamp
		} else {
			delay := timestamp.Sub(lastTimestamp)
			if r.speed != 1.0 {
				delay = time.Duration(float64(delay) / r.speed)
			}

			// Wait for the delay
			if delay > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(delay):
				}
			}

			lastTimestamp = timestamp
		}

		// Send snapshot
		select {
		case <-ctx.Done():
			return ctx.Err()
		case output <- snapshot:
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	return nil
}

// CountSnapshots returns the number of snapshots in the recording
func (r *Replayer) CountSnapshots() (int, error) {
	if err := r.loadMetadata(); err != nil {
		return 0, err
	}
	return r.snapshotCount, nil
}

// GetFirstSnapshot returns the first snapshot in the recording
func (r *Replayer) GetFirstSnapshot() (*models.Snapshot, error) {
	if err := r.loadMetadata(); err != nil {
		return nil, err
	}
	if r.firstSnapshot == nil {
		return nil, fmt.Errorf("recording file is empty")
	}
	return r.firstSnapshot, nil
}
